package board

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

// childList is the private container a parent uses for its children. Only
// copies of the backing slice ever leave it.
type childList[T interface{ Identity() uuid.UUID }] struct {
	items []T
}

func (l *childList[T]) view() []T {
	return slices.Clone(l.items)
}

func (l *childList[T]) len() int {
	return len(l.items)
}

func (l *childList[T]) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(l.items, func(item T) bool { return item.Identity() == id })
}

func (l *childList[T]) find(id uuid.UUID) (T, bool) {
	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// add appends item, replacing an existing child with the same identity.
func (l *childList[T]) add(item T) {
	if i := l.indexOf(item.Identity()); i >= 0 {
		l.items[i] = item
		return
	}
	l.items = append(l.items, item)
}

func (l *childList[T]) remove(id uuid.UUID) (T, bool) {
	i := l.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item, true
}

func (l *childList[T]) sortFunc(less func(a, b T) int) {
	slices.SortStableFunc(l.items, less)
}

// compareSiblings orders by position, then creation time, then id so that
// duplicate positions left by bulk reorders still sort deterministically.
func compareSiblings(a, b Entity) int {
	pa, aok := a.(Positioned)
	pb, bok := b.(Positioned)
	if aok && bok {
		if c := cmp.Compare(pa.Position(), pb.Position()); c != 0 {
			return c
		}
	}
	if c := createdAt(a).Compare(createdAt(b)); c != 0 {
		return c
	}
	return cmp.Compare(a.Identity().String(), b.Identity().String())
}

func createdAt(e Entity) time.Time {
	if c, ok := e.(interface{ Created() time.Time }); ok {
		return c.Created()
	}
	return time.Time{}
}

// SortSiblings sorts entities of the same kind into sibling order. Persistence
// adapters use it to honor the ordered contract of LoadSiblings.
func SortSiblings(items []Entity) {
	slices.SortStableFunc(items, compareSiblings)
}
