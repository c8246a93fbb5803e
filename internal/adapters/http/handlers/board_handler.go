// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/boardsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// BoardHandler handles HTTP requests for boards and their columns, cards
// and labels, plus the move and bulk reorder endpoints.
type BoardHandler struct {
	svc ports.BoardService
}

// NewBoardHandler creates a new BoardHandler with the given service port.
func NewBoardHandler(svc ports.BoardService) *BoardHandler {
	return &BoardHandler{svc: svc}
}

// ListBoards handles GET /api/v1/boards.
func (h *BoardHandler) ListBoards(w http.ResponseWriter, r *http.Request) {
	boards, err := h.svc.ListBoards(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBoardListResponse(boards))
}

// CreateBoard handles POST /api/v1/boards.
func (h *BoardHandler) CreateBoard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	b := &board.Board{
		Title:           req.Title,
		TitleColor:      req.TitleColor,
		BackgroundColor: req.BackgroundColor,
		BackgroundImage: req.BackgroundImage,
		IsFavorite:      req.IsFavorite,
	}
	created, err := h.svc.CreateBoard(r.Context(), b)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, created.Version)
	writeJSON(w, http.StatusCreated, dto.ToBoardResponse(created))
}

// GetBoard handles GET /api/v1/boards/{id}.
func (h *BoardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	b, err := h.svc.GetBoard(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, b.Version)
	writeJSON(w, http.StatusOK, dto.ToBoardDetailResponse(b))
}

// UpdateBoard handles PATCH /api/v1/boards/{id}.
func (h *BoardHandler) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, expected, ok := pathAndVersion(w, r)
	if !ok {
		return
	}
	var req dto.UpdateBoardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateBoard(r.Context(), id, req.Patch(), expected)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, dto.ToBoardResponse(updated))
}

// DeleteBoard handles DELETE /api/v1/boards/{id}.
func (h *BoardHandler) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, board.KindBoard)
}

// CreateColumn handles POST /api/v1/boards/{id}/columns.
func (h *BoardHandler) CreateColumn(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c := &board.Column{BoardID: boardID, Title: req.Title, TitleColor: req.TitleColor, HeaderColor: req.HeaderColor}
	created, err := h.svc.CreateColumn(r.Context(), c)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, created.Version)
	writeJSON(w, http.StatusCreated, dto.ToColumnResponse(created))
}

// UpdateColumn handles PATCH /api/v1/columns/{id}.
func (h *BoardHandler) UpdateColumn(w http.ResponseWriter, r *http.Request) {
	id, expected, ok := pathAndVersion(w, r)
	if !ok {
		return
	}
	var req dto.UpdateColumnRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateColumn(r.Context(), id, req.Patch(), expected)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, dto.ToColumnResponse(updated))
}

// DeleteColumn handles DELETE /api/v1/columns/{id}.
func (h *BoardHandler) DeleteColumn(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, board.KindColumn)
}

// CreateCard handles POST /api/v1/columns/{id}/cards.
func (h *BoardHandler) CreateCard(w http.ResponseWriter, r *http.Request) {
	columnID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c := &board.Card{ColumnID: columnID, Title: req.Title, Description: req.Description}
	c.SetLabels(req.Labels())
	created, err := h.svc.CreateCard(r.Context(), c)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, created.Version)
	writeJSON(w, http.StatusCreated, dto.ToCardResponse(created))
}

// UpdateCard handles PATCH /api/v1/cards/{id}.
func (h *BoardHandler) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, expected, ok := pathAndVersion(w, r)
	if !ok {
		return
	}
	var req dto.UpdateCardRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCard(r.Context(), id, req.Patch(), expected)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, dto.ToCardResponse(updated))
}

// ArchiveCard handles PUT /api/v1/cards/{id}/archive.
func (h *BoardHandler) ArchiveCard(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

// UnarchiveCard handles DELETE /api/v1/cards/{id}/archive.
func (h *BoardHandler) UnarchiveCard(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *BoardHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	id, expected, ok := pathAndVersion(w, r)
	if !ok {
		return
	}

	updated, err := h.svc.SetCardArchived(r.Context(), id, archived, expected)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, dto.ToCardResponse(updated))
}

// DeleteCard handles DELETE /api/v1/cards/{id}.
func (h *BoardHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, board.KindCard)
}

// CreateLabel handles POST /api/v1/boards/{id}/labels.
func (h *BoardHandler) CreateLabel(w http.ResponseWriter, r *http.Request) {
	boardID, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	var req dto.CreateLabelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	l := &board.Label{BoardID: boardID, Name: req.Name, Color: req.Color, TextColor: req.TextColor}
	created, err := h.svc.CreateLabel(r.Context(), l)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, created.Version)
	writeJSON(w, http.StatusCreated, dto.ToLabelResponse(created))
}

// UpdateLabel handles PATCH /api/v1/labels/{id}.
func (h *BoardHandler) UpdateLabel(w http.ResponseWriter, r *http.Request) {
	id, expected, ok := pathAndVersion(w, r)
	if !ok {
		return
	}
	var req dto.UpdateLabelRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateLabel(r.Context(), id, req.Patch(), expected)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	setETag(w, updated.Version)
	writeJSON(w, http.StatusOK, dto.ToLabelResponse(updated))
}

// DeleteLabel handles DELETE /api/v1/labels/{id}.
func (h *BoardHandler) DeleteLabel(w http.ResponseWriter, r *http.Request) {
	h.delete(w, r, board.KindLabel)
}

func (h *BoardHandler) delete(w http.ResponseWriter, r *http.Request, kind board.Kind) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), kind, id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveItem handles POST /api/v1/moves.
func (h *BoardHandler) MoveItem(w http.ResponseWriter, r *http.Request) {
	var req dto.MoveRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	changes, err := h.svc.MoveItem(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangesResponse(changes))
}

// BulkReorder handles POST /api/v1/reorders.
func (h *BoardHandler) BulkReorder(w http.ResponseWriter, r *http.Request) {
	var req dto.ReorderRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	changes, err := h.svc.BulkReorder(r.Context(), req.Command())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToChangesResponse(changes))
}
