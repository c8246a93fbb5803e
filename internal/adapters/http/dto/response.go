// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

// BoardResponse represents a board in HTTP responses. Columns and Labels are
// filled only for a single-board read.
type BoardResponse struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	TitleColor      string           `json:"title_color,omitempty"`
	BackgroundColor string           `json:"background_color,omitempty"`
	BackgroundImage string           `json:"background_image,omitempty"`
	IsFavorite      bool             `json:"is_favorite"`
	Version         int64            `json:"version"`
	Columns         []ColumnResponse `json:"columns,omitempty"`
	Labels          []LabelResponse  `json:"labels,omitempty"`
	CreatedAt       string           `json:"created_at"`
	UpdatedAt       string           `json:"updated_at"`
}

// BoardListResponse represents the dashboard listing.
type BoardListResponse struct {
	Boards []BoardResponse `json:"boards"`
	Count  int             `json:"count"`
}

// ToBoardResponse converts a board without its children.
func ToBoardResponse(b *board.Board) BoardResponse {
	return BoardResponse{
		ID:              b.ID.String(),
		Title:           b.Title,
		TitleColor:      b.TitleColor,
		BackgroundColor: b.BackgroundColor,
		BackgroundImage: b.BackgroundImage,
		IsFavorite:      b.IsFavorite,
		Version:         b.Version,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       b.UpdatedAt.Format(time.RFC3339),
	}
}

// ToBoardDetailResponse converts a board with its ordered columns, their
// ordered cards and its labels.
func ToBoardDetailResponse(b *board.Board) BoardResponse {
	resp := ToBoardResponse(b)

	cols := b.Columns()
	resp.Columns = make([]ColumnResponse, len(cols))
	for i, c := range cols {
		resp.Columns[i] = ToColumnResponse(c)
	}

	labels := b.Labels()
	resp.Labels = make([]LabelResponse, len(labels))
	for i, l := range labels {
		resp.Labels[i] = ToLabelResponse(l)
	}
	return resp
}

// ToBoardListResponse converts the dashboard listing.
func ToBoardListResponse(boards []*board.Board) BoardListResponse {
	items := make([]BoardResponse, len(boards))
	for i, b := range boards {
		items[i] = ToBoardResponse(b)
	}
	return BoardListResponse{Boards: items, Count: len(items)}
}

// ColumnResponse represents a column in HTTP responses.
type ColumnResponse struct {
	ID          string         `json:"id"`
	BoardID     string         `json:"board_id"`
	Title       string         `json:"title"`
	TitleColor  string         `json:"title_color,omitempty"`
	HeaderColor string         `json:"header_color,omitempty"`
	Order       int            `json:"order"`
	Version     int64          `json:"version"`
	Cards       []CardResponse `json:"cards,omitempty"`
	CreatedAt   string         `json:"created_at"`
	UpdatedAt   string         `json:"updated_at"`
}

// ToColumnResponse converts a column with whatever cards it holds.
func ToColumnResponse(c *board.Column) ColumnResponse {
	resp := ColumnResponse{
		ID:          c.ID.String(),
		BoardID:     c.BoardID.String(),
		Title:       c.Title,
		TitleColor:  c.TitleColor,
		HeaderColor: c.HeaderColor,
		Order:       c.Order,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
	if cards := c.Cards(); len(cards) > 0 {
		resp.Cards = make([]CardResponse, len(cards))
		for i, card := range cards {
			resp.Cards[i] = ToCardResponse(card)
		}
	}
	return resp
}

// CardResponse represents a card in HTTP responses.
type CardResponse struct {
	ID          string   `json:"id"`
	ColumnID    string   `json:"column_id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Order       int      `json:"order"`
	IsArchived  bool     `json:"is_archived"`
	LabelIDs    []string `json:"label_ids"`
	Version     int64    `json:"version"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// ToCardResponse converts a card.
func ToCardResponse(c *board.Card) CardResponse {
	labels := make([]string, len(c.LabelIDs))
	for i, id := range c.LabelIDs {
		labels[i] = id.String()
	}
	return CardResponse{
		ID:          c.ID.String(),
		ColumnID:    c.ColumnID.String(),
		Title:       c.Title,
		Description: c.Description,
		Order:       c.Order,
		IsArchived:  c.IsArchived,
		LabelIDs:    labels,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// LabelResponse represents a label in HTTP responses.
type LabelResponse struct {
	ID        string `json:"id"`
	BoardID   string `json:"board_id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	TextColor string `json:"text_color,omitempty"`
	Version   int64  `json:"version"`
}

// ToLabelResponse converts a label.
func ToLabelResponse(l *board.Label) LabelResponse {
	return LabelResponse{
		ID:        l.ID.String(),
		BoardID:   l.BoardID.String(),
		Name:      l.Name,
		Color:     l.Color,
		TextColor: l.TextColor,
		Version:   l.Version,
	}
}

// ChangeResponse reports one entity a move or reorder committed.
type ChangeResponse struct {
	Kind     string `json:"kind"`
	ID       string `json:"id"`
	ParentID string `json:"parent_id"`
	Order    int    `json:"order"`
	Version  int64  `json:"version"`
}

// ChangesResponse is the body of a successful move or reorder.
type ChangesResponse struct {
	Changes []ChangeResponse `json:"changes"`
	Count   int              `json:"count"`
}

// ToChangesResponse converts the committed changes of a move or reorder.
func ToChangesResponse(changes []board.Change) ChangesResponse {
	items := make([]ChangeResponse, len(changes))
	for i, c := range changes {
		items[i] = ChangeResponse{
			Kind:     c.Kind.String(),
			ID:       c.ID.String(),
			ParentID: c.ParentID.String(),
			Order:    c.Order,
			Version:  c.Version,
		}
	}
	return ChangesResponse{Changes: items, Count: len(items)}
}
