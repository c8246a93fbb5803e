package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

// Column is an ordered lane on a board.
type Column struct {
	Versioned
	BoardID     uuid.UUID `json:"board_id"`
	Title       string    `json:"title"`
	TitleColor  string    `json:"title_color,omitempty"`
	HeaderColor string    `json:"header_color,omitempty"`
	Order       int       `json:"order"`

	cards childList[*Card]
}

// NewColumn creates a column at the initial version.
func NewColumn(boardID uuid.UUID, title string, order int, now time.Time) *Column {
	return &Column{Versioned: newVersioned(now), BoardID: boardID, Title: title, Order: order}
}

// Kind implements Entity.
func (c *Column) Kind() Kind { return KindColumn }

// ParentID implements Entity.
func (c *Column) ParentID() uuid.UUID { return c.BoardID }

// Position implements Positioned.
func (c *Column) Position() int { return c.Order }

// SetPosition implements Positioned.
func (c *Column) SetPosition(order int) { c.Order = order }

// Validate checks business rules for the Column entity.
func (c *Column) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Title) == "" {
		fields["title"] = msgRequired
	}
	if c.BoardID == uuid.Nil {
		fields["board_id"] = msgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Cards returns a copy of the column's cards in their current order.
func (c *Column) Cards() []*Card { return c.cards.view() }

// Card returns the card with the given id, if the column holds it.
func (c *Column) Card(id uuid.UUID) (*Card, bool) { return c.cards.find(id) }

// CardCount returns the number of cards in the column.
func (c *Column) CardCount() int { return c.cards.len() }

// AddCard attaches card to the column, rewriting its ColumnID.
func (c *Column) AddCard(card *Card) {
	card.ColumnID = c.ID
	c.cards.add(card)
}

// RemoveCard detaches the card with the given id.
func (c *Column) RemoveCard(id uuid.UUID) bool {
	_, ok := c.cards.remove(id)
	return ok
}

// SortCards restores sibling order after positions have changed.
func (c *Column) SortCards() {
	c.cards.sortFunc(func(x, y *Card) int { return compareSiblings(x, y) })
}

// ColumnPatch lists the column fields an edit may change.
type ColumnPatch struct {
	Title       *string
	TitleColor  *string
	HeaderColor *string
}

// Apply writes the non-nil patch fields onto c.
func (c *Column) Apply(p ColumnPatch) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.TitleColor != nil {
		c.TitleColor = *p.TitleColor
	}
	if p.HeaderColor != nil {
		c.HeaderColor = *p.HeaderColor
	}
}
