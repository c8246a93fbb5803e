package board

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
)

// Label is a board-scoped tag that cards reference. Labels are not ordered.
type Label struct {
	Versioned
	BoardID   uuid.UUID `json:"board_id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	TextColor string    `json:"text_color,omitempty"`
}

// NewLabel creates a label at the initial version.
func NewLabel(boardID uuid.UUID, name string, now time.Time) *Label {
	return &Label{Versioned: newVersioned(now), BoardID: boardID, Name: name}
}

// Kind implements Entity.
func (l *Label) Kind() Kind { return KindLabel }

// ParentID implements Entity.
func (l *Label) ParentID() uuid.UUID { return l.BoardID }

// Validate checks business rules for the Label entity.
func (l *Label) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(l.Name) == "" {
		fields["name"] = msgRequired
	}
	if l.BoardID == uuid.Nil {
		fields["board_id"] = msgRequired
	}
	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// LabelPatch lists the label fields an edit may change.
type LabelPatch struct {
	Name      *string
	Color     *string
	TextColor *string
}

// Apply writes the non-nil patch fields onto l.
func (l *Label) Apply(p LabelPatch) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.Color != nil {
		l.Color = *p.Color
	}
	if p.TextColor != nil {
		l.TextColor = *p.TextColor
	}
}
