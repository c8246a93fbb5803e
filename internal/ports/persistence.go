package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain/board"
)

// Gateway defines the persistence port for board entities.
// Implemented by the memory and Redis adapters; called by the Concurrency
// Guard and the board service. Every returned entity is a private copy owned
// by the caller.
type Gateway interface {
	// Load returns the entity of the given kind with its stored version.
	// Returns domain.ErrNotFound if it does not exist.
	Load(ctx context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error)

	// LoadSiblings returns the children of kind under parentID ordered by
	// position (then creation time, then id). An unknown parent yields an
	// empty slice, not an error.
	LoadSiblings(ctx context.Context, kind board.Kind, parentID uuid.UUID) ([]board.Entity, error)

	// List returns every stored entity of the given kind.
	List(ctx context.Context, kind board.Kind) ([]board.Entity, error)

	// Insert stores a new entity at its current version.
	// Returns domain.ErrConflict if the id is already taken.
	Insert(ctx context.Context, entity board.Entity) error

	// CommitConditional persists entity only if the stored version still
	// equals expectedVersion, atomically incrementing the stored version.
	// Returns the new version on success. Returns domain.ErrConflict when the
	// stored version differs (nothing is written) and domain.ErrNotFound when
	// the entity no longer exists.
	CommitConditional(ctx context.Context, entity board.Entity, expectedVersion int64) (int64, error)

	// Delete removes the entity. Children are not cascaded.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, kind board.Kind, id uuid.UUID) error
}
