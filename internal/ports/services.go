package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

// BoardService defines the service port for board mutations and reads.
// Implemented by the application layer; called by inbound adapters (handlers).
//
// Every mutation returns nil or an error classified by domain.Classify:
// domain.ErrValidation, domain.ErrNotFound, domain.ErrConflict (the caller
// should re-fetch and retry) or an opaque *domain.UnexpectedError.
type BoardService interface {
	// MoveItem places a column or card at a new index. A card whose target
	// parent differs from its column moves across columns.
	MoveItem(ctx context.Context, cmd board.MoveCommand) ([]board.Change, error)

	// BulkReorder applies explicit positions to the children of a parent.
	// The batch is not atomic: it stops at the first failed commit and keeps
	// what was already committed.
	BulkReorder(ctx context.Context, cmd board.BulkReorderCommand) ([]board.Change, error)

	// ListBoards returns every board, favorites first.
	ListBoards(ctx context.Context) ([]*board.Board, error)

	// GetBoard returns a board with its ordered columns, ordered cards and
	// labels attached.
	// Returns domain.ErrNotFound if the board does not exist.
	GetBoard(ctx context.Context, id uuid.UUID) (*board.Board, error)

	// CreateBoard, CreateColumn, CreateCard and CreateLabel store new
	// entities at version 1.
	// Returns domain.ErrValidation if the entity fails validation and
	// domain.ErrNotFound if its parent does not exist.
	CreateBoard(ctx context.Context, b *board.Board) (*board.Board, error)
	CreateColumn(ctx context.Context, c *board.Column) (*board.Column, error)
	CreateCard(ctx context.Context, c *board.Card) (*board.Card, error)
	CreateLabel(ctx context.Context, l *board.Label) (*board.Label, error)

	// UpdateBoard, UpdateColumn, UpdateCard, SetCardArchived and UpdateLabel
	// edit one entity through the Concurrency Guard. A non-nil expected
	// version must match the stored version.
	UpdateBoard(ctx context.Context, id uuid.UUID, patch board.BoardPatch, expected *int64) (*board.Board, error)
	UpdateColumn(ctx context.Context, id uuid.UUID, patch board.ColumnPatch, expected *int64) (*board.Column, error)
	UpdateCard(ctx context.Context, id uuid.UUID, patch board.CardPatch, expected *int64) (*board.Card, error)
	SetCardArchived(ctx context.Context, id uuid.UUID, archived bool, expected *int64) (*board.Card, error)
	UpdateLabel(ctx context.Context, id uuid.UUID, patch board.LabelPatch, expected *int64) (*board.Label, error)

	// Delete removes an entity and everything it owns.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, kind board.Kind, id uuid.UUID) error
}
