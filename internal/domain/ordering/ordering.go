// Package ordering computes position assignments for sibling sets. It has no
// I/O and never mutates its inputs: every function returns fresh slices.
//
// Two paths exist and deliberately disagree. SingleMove and CrossParentMove
// normalize the destination to contiguous 0..n-1 positions. BulkReorder
// applies caller-supplied positions verbatim and may leave gaps or
// duplicates.
package ordering

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

// Entry is one sibling: a stable identity and its position.
type Entry struct {
	ID    uuid.UUID
	Order int
}

// Item is anything that can be projected onto an Entry.
type Item interface {
	Identity() uuid.UUID
	Position() int
}

// EntriesOf projects items onto entries, keeping their sequence.
func EntriesOf[T Item](items []T) []Entry {
	out := make([]Entry, len(items))
	for i, item := range items {
		out[i] = Entry{ID: item.Identity(), Order: item.Position()}
	}
	return out
}

// IndexOf returns the index of id in seq, or -1.
func IndexOf(seq []Entry, id uuid.UUID) int {
	return slices.IndexFunc(seq, func(e Entry) bool { return e.ID == id })
}

// Clamp limits i to [lo, hi].
func Clamp(i, lo, hi int) int {
	return max(lo, min(i, hi))
}

// Renumber returns a copy of seq whose orders are its indexes.
func Renumber(seq []Entry) []Entry {
	out := slices.Clone(seq)
	for i := range out {
		out[i].Order = i
	}
	return out
}

// SingleMove moves id to requested within siblings. The index is clamped to
// the bounds of the sequence, so out-of-range requests are never errors.
// The returned sequence is renumbered 0..n-1. A missing id yields an error
// wrapping domain.ErrNotFound.
func SingleMove(siblings []Entry, id uuid.UUID, requested int) ([]Entry, error) {
	remaining, moving, err := without(siblings, id)
	if err != nil {
		return nil, err
	}
	at := Clamp(requested, 0, len(remaining))
	return Renumber(slices.Insert(remaining, at, moving)), nil
}

// CrossParentMove takes id out of source and inserts it into dest at the
// clamped index. Only dest is renumbered; the remaining source entries keep
// their positions, gaps included.
func CrossParentMove(source, dest []Entry, id uuid.UUID, requested int) (newSource, newDest []Entry, err error) {
	newSource, moving, err := without(source, id)
	if err != nil {
		return nil, nil, err
	}
	at := Clamp(requested, 0, len(dest))
	newDest = Renumber(slices.Insert(slices.Clone(dest), at, moving))
	return newSource, newDest, nil
}

// BulkReorder sets the order of every entry named in orders to the mapped
// value. Entries absent from the map keep their order and map keys that
// match no entry are ignored. The sequence itself is not re-sorted.
func BulkReorder(siblings []Entry, orders map[uuid.UUID]int) []Entry {
	out := slices.Clone(siblings)
	for i := range out {
		if order, ok := orders[out[i].ID]; ok {
			out[i].Order = order
		}
	}
	return out
}

// Changed returns the entries of after whose order differs from before, or
// which were not in before at all. Sequence order of after is preserved.
func Changed(before, after []Entry) []Entry {
	prev := make(map[uuid.UUID]int, len(before))
	for _, e := range before {
		prev[e.ID] = e.Order
	}
	var out []Entry
	for _, e := range after {
		if order, ok := prev[e.ID]; !ok || order != e.Order {
			out = append(out, e)
		}
	}
	return out
}

func without(seq []Entry, id uuid.UUID) ([]Entry, Entry, error) {
	i := IndexOf(seq, id)
	if i < 0 {
		return nil, Entry{}, fmt.Errorf("item %s is not in the sibling set: %w", id, domain.ErrNotFound)
	}
	out := make([]Entry, 0, len(seq)-1)
	out = append(out, seq[:i]...)
	out = append(out, seq[i+1:]...)
	return out, seq[i], nil
}
