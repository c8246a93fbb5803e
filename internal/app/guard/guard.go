// Package guard implements optimistic concurrency for board entities.
//
// A Guard turns "load, mutate in memory, write back" into a conditional
// write: Commit succeeds only if the stored version still equals the version
// the entity was loaded at, and the store bumps the version by exactly one.
// No lock is held between Load and Commit, and the Guard never retries.
//
//	g := guard.New(store, metrics)
//	col, err := g.Load(ctx, board.KindColumn, id)
//	col.(*board.Column).Title = "Doing"
//	err = g.Commit(ctx, col, col.CurrentVersion())
//
// Unit layers request-scoped memoization and ordered, non-atomic batches on
// top of the same Commit.
package guard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Guard wraps a persistence gateway with version-checked commits.
type Guard struct {
	store   ports.Gateway
	metrics *telemetry.Metrics
	now     func() time.Time
}

// Option configures a Guard.
type Option func(*Guard)

// WithClock overrides the time source used to stamp UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(g *Guard) { g.now = now }
}

// New creates a Guard over store. If metrics is nil, commit counting is
// skipped.
func New(store ports.Gateway, metrics *telemetry.Metrics, opts ...Option) *Guard {
	g := &Guard{store: store, metrics: metrics, now: time.Now}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Load fetches an entity together with its current version.
// Returns an error wrapping domain.ErrNotFound if it does not exist.
func (g *Guard) Load(ctx context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error) {
	e, err := g.store.Load(ctx, kind, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("loading %s %s: %w", kind, id, err)
	}
	return e, nil
}

// LoadSiblings fetches the ordered children of parentID.
func (g *Guard) LoadSiblings(ctx context.Context, kind board.Kind, parentID uuid.UUID) ([]board.Entity, error) {
	items, err := g.store.LoadSiblings(ctx, kind, parentID)
	if err != nil {
		return nil, fmt.Errorf("loading %s siblings of %s: %w", kind, parentID, err)
	}
	return items, nil
}

// Commit writes e if the stored version still equals expected. On success
// e carries the new version, which is always expected+1. A stale expected
// version yields a *domain.ConflictError and leaves the store untouched; a
// vanished entity yields domain.ErrNotFound.
func (g *Guard) Commit(ctx context.Context, e board.Entity, expected int64) error {
	e.Touch(g.now())

	next, err := g.store.CommitConditional(ctx, e, expected)
	err = g.classify(e, err)
	if err == nil && next != expected+1 {
		err = fmt.Errorf("committing %s: store returned version %d, want %d", board.Describe(e), next, expected+1)
	}
	g.record(ctx, e.Kind(), err)
	if err != nil {
		return err
	}

	e.SetVersion(next)
	return nil
}

// CheckExpected compares a caller-supplied version with the loaded entity.
// A nil expected version always passes.
func CheckExpected(e board.Entity, expected *int64) error {
	if expected == nil || *expected == e.CurrentVersion() {
		return nil
	}
	return conflictFor(e)
}

func (g *Guard) classify(e board.Entity, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrConflict):
		return conflictFor(e)
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("%s: %w", board.Describe(e), domain.ErrNotFound)
	default:
		return fmt.Errorf("committing %s: %w", board.Describe(e), err)
	}
}

func (g *Guard) record(ctx context.Context, kind board.Kind, err error) {
	if g.metrics == nil || g.metrics.CommitTotal == nil {
		return
	}
	g.metrics.CommitTotal.Add(ctx, 1, metric.WithAttributes(
		telemetry.AttrEntityKind.String(kind.String()),
		telemetry.AttrResult.String(string(domain.Classify(err))),
	))
}

func conflictFor(e board.Entity) *domain.ConflictError {
	return &domain.ConflictError{Kind: e.Kind().String(), ID: e.Identity().String()}
}
