package dto

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgInvalidUUID  = "must be a valid UUID"
)

// fieldErrors collects per-field failures for a request body.
type fieldErrors map[string]string

func (f fieldErrors) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		f[field] = msgRequired
	}
}

func (f fieldErrors) notEmpty(field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		f[field] = msgMustNotEmpty
	}
}

func (f fieldErrors) id(field, value string) uuid.UUID {
	if value == "" {
		f[field] = msgRequired
		return uuid.Nil
	}
	id, err := uuid.Parse(value)
	if err != nil || id == uuid.Nil {
		f[field] = msgInvalidUUID
		return uuid.Nil
	}
	return id
}

func (f fieldErrors) ids(field string, values []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil || id == uuid.Nil {
			f[fmt.Sprintf("%s[%d]", field, i)] = msgInvalidUUID
			continue
		}
		out = append(out, id)
	}
	return out
}

func (f fieldErrors) err() error {
	if len(f) > 0 {
		return &domain.ValidationError{Fields: f}
	}
	return nil
}

// CreateBoardRequest represents the JSON body for creating a board.
type CreateBoardRequest struct {
	Title           string `json:"title"`
	TitleColor      string `json:"title_color,omitempty"`
	BackgroundColor string `json:"background_color,omitempty"`
	BackgroundImage string `json:"background_image,omitempty"`
	IsFavorite      bool   `json:"is_favorite,omitempty"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *CreateBoardRequest) Validate() error {
	f := fieldErrors{}
	f.required("title", r.Title)
	return f.err()
}

// UpdateBoardRequest represents the JSON body for editing a board.
// All fields are optional; nil means "do not change this field.".
type UpdateBoardRequest struct {
	Title           *string `json:"title,omitempty"`
	TitleColor      *string `json:"title_color,omitempty"`
	BackgroundColor *string `json:"background_color,omitempty"`
	BackgroundImage *string `json:"background_image,omitempty"`
	IsFavorite      *bool   `json:"is_favorite,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateBoardRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("title", r.Title)
	return f.err()
}

// Patch converts the request to a domain patch.
func (r *UpdateBoardRequest) Patch() board.BoardPatch {
	return board.BoardPatch{
		Title:           r.Title,
		TitleColor:      r.TitleColor,
		BackgroundColor: r.BackgroundColor,
		BackgroundImage: r.BackgroundImage,
		IsFavorite:      r.IsFavorite,
	}
}

// CreateColumnRequest represents the JSON body for adding a column to a
// board. The board comes from the path.
type CreateColumnRequest struct {
	Title       string `json:"title"`
	TitleColor  string `json:"title_color,omitempty"`
	HeaderColor string `json:"header_color,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateColumnRequest) Validate() error {
	f := fieldErrors{}
	f.required("title", r.Title)
	return f.err()
}

// UpdateColumnRequest represents the JSON body for editing a column.
type UpdateColumnRequest struct {
	Title       *string `json:"title,omitempty"`
	TitleColor  *string `json:"title_color,omitempty"`
	HeaderColor *string `json:"header_color,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateColumnRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("title", r.Title)
	return f.err()
}

// Patch converts the request to a domain patch.
func (r *UpdateColumnRequest) Patch() board.ColumnPatch {
	return board.ColumnPatch{Title: r.Title, TitleColor: r.TitleColor, HeaderColor: r.HeaderColor}
}

// CreateCardRequest represents the JSON body for adding a card to a column.
type CreateCardRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	LabelIDs    []string `json:"label_ids,omitempty"`

	labelIDs []uuid.UUID
}

// Validate checks that required fields are present and label ids parse.
func (r *CreateCardRequest) Validate() error {
	f := fieldErrors{}
	f.required("title", r.Title)
	r.labelIDs = f.ids("label_ids", r.LabelIDs)
	return f.err()
}

// Labels returns the parsed label ids. Valid only after Validate succeeds.
func (r *CreateCardRequest) Labels() []uuid.UUID { return r.labelIDs }

// UpdateCardRequest represents the JSON body for editing a card. A present
// label_ids replaces the card's labels; an empty list clears them.
type UpdateCardRequest struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	LabelIDs    *[]string `json:"label_ids,omitempty"`

	labelIDs []uuid.UUID
}

// Validate checks that any provided fields have valid values.
func (r *UpdateCardRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("title", r.Title)
	if r.LabelIDs != nil {
		r.labelIDs = f.ids("label_ids", *r.LabelIDs)
	}
	return f.err()
}

// Patch converts the request to a domain patch. Valid only after Validate
// succeeds.
func (r *UpdateCardRequest) Patch() board.CardPatch {
	p := board.CardPatch{Title: r.Title, Description: r.Description}
	if r.LabelIDs != nil {
		ids := r.labelIDs
		p.LabelIDs = &ids
	}
	return p
}

// CreateLabelRequest represents the JSON body for adding a label to a board.
type CreateLabelRequest struct {
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	TextColor string `json:"text_color,omitempty"`
}

// Validate checks that required fields are present.
func (r *CreateLabelRequest) Validate() error {
	f := fieldErrors{}
	f.required("name", r.Name)
	return f.err()
}

// UpdateLabelRequest represents the JSON body for editing a label.
type UpdateLabelRequest struct {
	Name      *string `json:"name,omitempty"`
	Color     *string `json:"color,omitempty"`
	TextColor *string `json:"text_color,omitempty"`
}

// Validate checks that any provided fields have valid values.
func (r *UpdateLabelRequest) Validate() error {
	f := fieldErrors{}
	f.notEmpty("name", r.Name)
	return f.err()
}

// Patch converts the request to a domain patch.
func (r *UpdateLabelRequest) Patch() board.LabelPatch {
	return board.LabelPatch{Name: r.Name, Color: r.Color, TextColor: r.TextColor}
}

// MoveRequest represents the JSON body of POST /moves.
type MoveRequest struct {
	Kind            string  `json:"kind"`
	ItemID          string  `json:"item_id"`
	TargetParentID  *string `json:"target_parent_id,omitempty"`
	Index           int     `json:"index"`
	ExpectedVersion *int64  `json:"expected_version,omitempty"`

	cmd board.MoveCommand
}

// Validate checks the kind and identifiers and builds the command. Range
// checks on Index are left to the ordering engine, which clamps.
func (r *MoveRequest) Validate() error {
	f := fieldErrors{}
	kind, err := board.ParseKind(r.Kind)
	if err != nil {
		f["kind"] = fmt.Sprintf("invalid: %q", r.Kind)
	}
	r.cmd = board.MoveCommand{
		Kind:            kind,
		ItemID:          f.id("item_id", r.ItemID),
		Index:           r.Index,
		ExpectedVersion: r.ExpectedVersion,
	}
	if r.TargetParentID != nil {
		target := f.id("target_parent_id", *r.TargetParentID)
		r.cmd.TargetParentID = &target
	}
	return f.err()
}

// Command returns the move command. Valid only after Validate succeeds.
func (r *MoveRequest) Command() board.MoveCommand { return r.cmd }

// ReorderRequest represents the JSON body of POST /reorders. Orders maps
// child ids to their requested positions and is applied verbatim.
type ReorderRequest struct {
	Kind     string         `json:"kind"`
	ParentID string         `json:"parent_id"`
	Orders   map[string]int `json:"orders"`

	cmd board.BulkReorderCommand
}

// Validate checks the kind and identifiers and builds the command. The batch
// ceiling is enforced by the service.
func (r *ReorderRequest) Validate() error {
	f := fieldErrors{}
	kind, err := board.ParseKind(r.Kind)
	if err != nil {
		f["kind"] = fmt.Sprintf("invalid: %q", r.Kind)
	}
	if r.Orders == nil {
		f["orders"] = msgRequired
	}

	orders := make(map[uuid.UUID]int, len(r.Orders))
	for raw, order := range r.Orders {
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			f["orders."+raw] = msgInvalidUUID
			continue
		}
		orders[id] = order
	}
	r.cmd = board.BulkReorderCommand{
		Kind:     kind,
		ParentID: f.id("parent_id", r.ParentID),
		Orders:   orders,
	}
	return f.err()
}

// Command returns the reorder command. Valid only after Validate succeeds.
func (r *ReorderRequest) Command() board.BulkReorderCommand { return r.cmd }
