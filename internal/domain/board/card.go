package board

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

// Card is an ordered item within a column.
type Card struct {
	Versioned
	ColumnID    uuid.UUID   `json:"column_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Order       int         `json:"order"`
	IsArchived  bool        `json:"is_archived"`
	LabelIDs    []uuid.UUID `json:"label_ids,omitempty"`
}

// NewCard creates a card at the initial version. New cards take position 0
// without shifting their siblings.
func NewCard(columnID uuid.UUID, title string, now time.Time) *Card {
	return &Card{Versioned: newVersioned(now), ColumnID: columnID, Title: title}
}

// Kind implements Entity.
func (c *Card) Kind() Kind { return KindCard }

// ParentID implements Entity.
func (c *Card) ParentID() uuid.UUID { return c.ColumnID }

// Position implements Positioned.
func (c *Card) Position() int { return c.Order }

// SetPosition implements Positioned.
func (c *Card) SetPosition(order int) { c.Order = order }

// MoveTo reparents the card under another column.
func (c *Card) MoveTo(columnID uuid.UUID) { c.ColumnID = columnID }

// Archive hides the card from the active board.
func (c *Card) Archive() { c.IsArchived = true }

// Unarchive restores an archived card.
func (c *Card) Unarchive() { c.IsArchived = false }

// SetLabels replaces the card's label references, dropping duplicates and
// nil ids while keeping first-seen order.
func (c *Card) SetLabels(ids []uuid.UUID) {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil || slices.Contains(out, id) {
			continue
		}
		out = append(out, id)
	}
	c.LabelIDs = out
}

// HasLabel reports whether the card references the label.
func (c *Card) HasLabel(id uuid.UUID) bool {
	return slices.Contains(c.LabelIDs, id)
}

// Validate checks business rules for the Card entity.
func (c *Card) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = msgRequired
	}
	if c.ColumnID == uuid.Nil {
		fields["column_id"] = msgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// CardPatch lists the card fields an edit may change.
type CardPatch struct {
	Title       *string
	Description *string
	LabelIDs    *[]uuid.UUID
}

// Apply writes the non-nil patch fields onto c.
func (c *Card) Apply(p CardPatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.LabelIDs != nil {
		c.SetLabels(*p.LabelIDs)
	}
}
