// Package board defines the kanban entities: boards own ordered columns and
// an unordered set of labels, columns own ordered cards. Every entity carries
// a version token used for optimistic concurrency.
//
// Parents keep their children in private containers. Callers get copies of
// the child slices and change membership only through the Add/Remove/Sort
// methods.
package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

const msgRequired = "is required"

// Board is the top-level entity. It is the unit of change notification.
type Board struct {
	Versioned
	Title           string `json:"title"`
	TitleColor      string `json:"title_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
	IsFavorite      bool   `json:"is_favorite"`

	columns childList[*Column]
	labels  childList[*Label]
}

// NewBoard creates a board at the initial version.
func NewBoard(title string, now time.Time) *Board {
	return &Board{Versioned: newVersioned(now), Title: title}
}

// Kind implements Entity.
func (b *Board) Kind() Kind { return KindBoard }

// ParentID implements Entity. Boards have no parent.
func (b *Board) ParentID() uuid.UUID { return uuid.Nil }

// Validate checks business rules for the Board entity.
func (b *Board) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return domain.NewValidationError("title", msgRequired)
	}
	return nil
}

// Columns returns a copy of the board's columns in their current order.
func (b *Board) Columns() []*Column { return b.columns.view() }

// Column returns the column with the given id, if the board holds it.
func (b *Board) Column(id uuid.UUID) (*Column, bool) { return b.columns.find(id) }

// AddColumn attaches c to the board, rewriting its BoardID.
func (b *Board) AddColumn(c *Column) {
	c.BoardID = b.ID
	b.columns.add(c)
}

// RemoveColumn detaches the column with the given id. It reports whether the
// column was present.
func (b *Board) RemoveColumn(id uuid.UUID) bool {
	_, ok := b.columns.remove(id)
	return ok
}

// SortColumns restores sibling order after positions have changed.
func (b *Board) SortColumns() {
	b.columns.sortFunc(func(x, y *Column) int { return compareSiblings(x, y) })
}

// NextColumnOrder returns the position a newly created column takes: one past
// the highest existing position, or 0 on an empty board.
func (b *Board) NextColumnOrder() int {
	next := 0
	for _, c := range b.columns.items {
		if c.Order >= next {
			next = c.Order + 1
		}
	}
	return next
}

// Labels returns a copy of the board's labels.
func (b *Board) Labels() []*Label { return b.labels.view() }

// Label returns the label with the given id, if the board holds it.
func (b *Board) Label(id uuid.UUID) (*Label, bool) { return b.labels.find(id) }

// AddLabel attaches l to the board, rewriting its BoardID.
func (b *Board) AddLabel(l *Label) {
	l.BoardID = b.ID
	b.labels.add(l)
}

// RemoveLabel detaches the label with the given id.
func (b *Board) RemoveLabel(id uuid.UUID) bool {
	_, ok := b.labels.remove(id)
	return ok
}

// BoardPatch lists the board fields an edit may change. Nil means unchanged.
type BoardPatch struct {
	Title           *string
	TitleColor      *string
	BackgroundColor *string
	BackgroundImage *string
	IsFavorite      *bool
}

// Apply writes the non-nil patch fields onto b. It reports whether anything
// shown on the dashboard changed.
func (b *Board) Apply(p BoardPatch) bool {
	changed := false
	set := func(dst *string, src *string) {
		if src != nil && *dst != *src {
			*dst = *src
			changed = true
		}
	}
	set(&b.Title, p.Title)
	set(&b.TitleColor, p.TitleColor)
	set(&b.BackgroundColor, p.BackgroundColor)
	set(&b.BackgroundImage, p.BackgroundImage)
	if p.IsFavorite != nil && b.IsFavorite != *p.IsFavorite {
		b.IsFavorite = *p.IsFavorite
		changed = true
	}
	return changed
}
