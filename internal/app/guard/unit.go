package guard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
)

// ErrAlreadyCommitted is returned when Stage or Commit is called on a Unit
// that has already been committed.
var ErrAlreadyCommitted = errors.New("guard: unit already committed")

// ErrNotTracked is returned by Stage for an entity that was not loaded
// through the same Unit, so its expected version is unknown.
var ErrNotTracked = errors.New("guard: entity not loaded through this unit")

// ErrTypeMismatch is returned by Load when the stored entity is not of the
// requested Go type. This indicates a programming error.
var ErrTypeMismatch = errors.New("guard: entity type mismatch")

type unitKey struct {
	kind board.Kind
	id   uuid.UUID
}

type tracked struct {
	entity   board.Entity
	expected int64
	err      error
}

// Unit is the request-scoped view of one mutation. Loads are memoized so an
// entity reached both directly and as a sibling is the same instance, and
// every staged entity is committed against the version it was loaded at.
//
// A Unit is strictly request-scoped: create one per operation.
type Unit struct {
	guard *Guard

	mu        sync.Mutex
	loaded    map[unitKey]*tracked
	staged    []unitKey
	committed bool
}

// Report describes how far a Commit got.
type Report struct {
	// Committed lists the entities written, in commit order. They stay
	// written even when a later commit fails.
	Committed []board.Entity
	// Failed is the entity whose commit stopped the batch, or nil.
	Failed board.Entity
	// Skipped counts staged entities never attempted.
	Skipped int
}

// Begin creates an empty Unit.
func (g *Guard) Begin() *Unit {
	return &Unit{guard: g, loaded: make(map[unitKey]*tracked)}
}

// Load returns the entity of the given kind as type T, fetching it once per
// Unit. Errors are memoized as well.
func Load[T board.Entity](ctx context.Context, u *Unit, kind board.Kind, id uuid.UUID) (T, error) {
	var zero T

	e, err := u.load(ctx, kind, id)
	if err != nil {
		return zero, err
	}
	v, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s %s is %T, requested %T", ErrTypeMismatch, kind, id, e, zero)
	}
	return v, nil
}

func (u *Unit) load(ctx context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error) {
	key := unitKey{kind: kind, id: id}

	u.mu.Lock()
	if t, ok := u.loaded[key]; ok {
		u.mu.Unlock()
		return t.entity, t.err
	}
	u.mu.Unlock()

	e, err := u.guard.Load(ctx, kind, id)

	u.mu.Lock()
	defer u.mu.Unlock()
	if t, ok := u.loaded[key]; ok {
		return t.entity, t.err
	}
	t := &tracked{entity: e, err: err}
	if err == nil {
		t.expected = e.CurrentVersion()
	}
	u.loaded[key] = t
	return t.entity, t.err
}

// Siblings loads the ordered children of parentID. Children already loaded
// through this Unit are returned as the existing instances.
func Siblings[T board.Positioned](ctx context.Context, u *Unit, kind board.Kind, parentID uuid.UUID) ([]T, error) {
	items, err := u.guard.LoadSiblings(ctx, kind, parentID)
	if err != nil {
		return nil, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]T, 0, len(items))
	for _, e := range items {
		key := unitKey{kind: e.Kind(), id: e.Identity()}
		if t, ok := u.loaded[key]; ok && t.err == nil {
			e = t.entity
		} else {
			u.loaded[key] = &tracked{entity: e, expected: e.CurrentVersion()}
		}
		v, ok := e.(T)
		if !ok {
			return nil, fmt.Errorf("%w: sibling %s is %T", ErrTypeMismatch, board.Describe(e), e)
		}
		out = append(out, v)
	}
	return out, nil
}

// Expected returns the version e was loaded at through this Unit.
func (u *Unit) Expected(e board.Entity) (int64, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	t, ok := u.loaded[unitKey{kind: e.Kind(), id: e.Identity()}]
	if !ok || t.err != nil {
		return 0, false
	}
	return t.expected, true
}

// Stage queues e for the next Commit. Staging the same entity twice keeps its
// first position in the queue.
func (u *Unit) Stage(e board.Entity) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.committed {
		return ErrAlreadyCommitted
	}
	key := unitKey{kind: e.Kind(), id: e.Identity()}
	t, ok := u.loaded[key]
	if !ok || t.err != nil || t.entity != e {
		return fmt.Errorf("%w: %s", ErrNotTracked, board.Describe(e))
	}
	for _, k := range u.staged {
		if k == key {
			return nil
		}
	}
	u.staged = append(u.staged, key)
	return nil
}

// Commit writes the staged entities one at a time in staging order. It stops
// at the first failure and does not undo earlier writes; the Report says
// which entities were committed. After Commit returns the Unit is closed.
func (u *Unit) Commit(ctx context.Context) (*Report, error) {
	u.mu.Lock()
	if u.committed {
		u.mu.Unlock()
		return nil, ErrAlreadyCommitted
	}
	u.committed = true
	items := make([]*tracked, len(u.staged))
	for i, key := range u.staged {
		items[i] = u.loaded[key]
	}
	u.mu.Unlock()

	logger := logging.FromContext(ctx)
	report := &Report{Committed: make([]board.Entity, 0, len(items))}

	for i, t := range items {
		logger.DebugContext(ctx, "committing entity",
			slog.String("operation", "Unit.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("entity", board.Describe(t.entity)),
			slog.Int64("expected_version", t.expected),
		)

		if err := u.guard.Commit(ctx, t.entity, t.expected); err != nil {
			report.Failed = t.entity
			report.Skipped = len(items) - i - 1
			if len(report.Committed) > 0 {
				logger.WarnContext(ctx, "commit stopped, earlier commits kept",
					slog.String("operation", "Unit.Commit"),
					slog.Int("failed_step", i+1),
					slog.Int("committed", len(report.Committed)),
					slog.String("entity", board.Describe(t.entity)),
					slog.Any("error", err),
				)
			}
			return report, err
		}
		t.expected = t.entity.CurrentVersion()
		report.Committed = append(report.Committed, t.entity)
	}

	return report, nil
}
