// Package resilient decorates a ports.Gateway with a circuit breaker,
// retries for read-only calls, OpenTelemetry spans and store metrics.
//
// Processing order for every call:
//
//	Span → Circuit Breaker → Retry (reads only) → Gateway
//
// Conditional commits and other writes are never retried: a write whose
// reply was lost may already have bumped the version, and a blind retry
// would turn that success into a spurious conflict.
//
// Expected outcomes (not found, conflict, validation) count as successes for
// the breaker. Only infrastructure failures open it, and while it is open
// every call fails fast with domain.ErrUnavailable.
package resilient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/boardsync/internal/domain"
	"github.com/jsamuelsen11/boardsync/internal/domain/board"
	"github.com/jsamuelsen11/boardsync/internal/platform/telemetry"
	"github.com/jsamuelsen11/boardsync/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.Gateway       = (*Gateway)(nil)
	_ ports.HealthChecker = (*Gateway)(nil)
)

const healthName = "store-breaker"

// Settings configures the decorator.
type Settings struct {
	// Name identifies the wrapped store in spans, logs and breaker events.
	Name string

	MaxFailures   int
	Timeout       time.Duration
	HalfOpenLimit int

	Retry RetryPolicy
}

// RetryPolicy is the exponential backoff applied to read-only calls.
type RetryPolicy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
}

// Gateway is a ports.Gateway wrapper.
type Gateway struct {
	next    ports.Gateway
	name    string
	breaker *gobreaker.CircuitBreaker[struct{}]
	retry   RetryPolicy
	metrics *telemetry.Metrics
	logger  *slog.Logger
	tracer  trace.Tracer
}

// New wraps next. If metrics is nil, metric recording is skipped.
func New(next ports.Gateway, s Settings, metrics *telemetry.Metrics, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if s.Retry.MaxAttempts < 1 {
		s.Retry.MaxAttempts = 1
	}

	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: toUint32(s.HalfOpenLimit),
		Timeout:     s.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= s.MaxFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return &Gateway{
		next:    next,
		name:    s.Name,
		breaker: cb,
		retry:   s.Retry,
		metrics: metrics,
		logger:  logger,
		tracer:  otel.GetTracerProvider().Tracer("store"),
	}
}

// isSuccessful keeps expected outcomes and caller cancellations from
// counting against the store.
func isSuccessful(err error) bool {
	return err == nil ||
		domain.IsExpected(err) ||
		errors.Is(err, context.Canceled)
}

// Load implements ports.Gateway.
func (g *Gateway) Load(ctx context.Context, kind board.Kind, id uuid.UUID) (board.Entity, error) {
	var out board.Entity
	err := g.call(ctx, "load", true, []attribute.KeyValue{
		telemetry.AttrEntityKind.String(kind.String()),
		attribute.String("entity.id", id.String()),
	}, func(ctx context.Context) error {
		var err error
		out, err = g.next.Load(ctx, kind, id)
		return err
	})
	return out, err
}

// LoadSiblings implements ports.Gateway.
func (g *Gateway) LoadSiblings(ctx context.Context, kind board.Kind, parentID uuid.UUID) ([]board.Entity, error) {
	var out []board.Entity
	err := g.call(ctx, "load_siblings", true, []attribute.KeyValue{
		telemetry.AttrEntityKind.String(kind.String()),
		attribute.String("entity.parent_id", parentID.String()),
	}, func(ctx context.Context) error {
		var err error
		out, err = g.next.LoadSiblings(ctx, kind, parentID)
		return err
	})
	return out, err
}

// List implements ports.Gateway.
func (g *Gateway) List(ctx context.Context, kind board.Kind) ([]board.Entity, error) {
	var out []board.Entity
	err := g.call(ctx, "list", true, []attribute.KeyValue{
		telemetry.AttrEntityKind.String(kind.String()),
	}, func(ctx context.Context) error {
		var err error
		out, err = g.next.List(ctx, kind)
		return err
	})
	return out, err
}

// Insert implements ports.Gateway.
func (g *Gateway) Insert(ctx context.Context, e board.Entity) error {
	return g.call(ctx, "insert", false, entityAttrs(e), func(ctx context.Context) error {
		return g.next.Insert(ctx, e)
	})
}

// CommitConditional implements ports.Gateway.
func (g *Gateway) CommitConditional(ctx context.Context, e board.Entity, expectedVersion int64) (int64, error) {
	var next int64
	attrs := append(entityAttrs(e), attribute.Int64("entity.expected_version", expectedVersion))
	err := g.call(ctx, "commit", false, attrs, func(ctx context.Context) error {
		var err error
		next, err = g.next.CommitConditional(ctx, e, expectedVersion)
		return err
	})
	return next, err
}

// Delete implements ports.Gateway.
func (g *Gateway) Delete(ctx context.Context, kind board.Kind, id uuid.UUID) error {
	return g.call(ctx, "delete", false, []attribute.KeyValue{
		telemetry.AttrEntityKind.String(kind.String()),
		attribute.String("entity.id", id.String()),
	}, func(ctx context.Context) error {
		return g.next.Delete(ctx, kind, id)
	})
}

// Name implements ports.HealthChecker.
func (g *Gateway) Name() string { return healthName }

// HealthCheck reports the breaker state without touching the store.
//
// State mapping:
//   - "closed"    healthy; returns nil.
//   - "half-open" probing recovery; returns a degraded error.
//   - "open"      rejecting calls; returns a failing error.
func (g *Gateway) HealthCheck(_ context.Context) error {
	state := g.breaker.State()
	switch state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", g.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", g.name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", g.name, state)
	}
}

func (g *Gateway) call(
	ctx context.Context,
	op string,
	readOnly bool,
	attrs []attribute.KeyValue,
	fn func(context.Context) error,
) error {
	start := time.Now()

	ctx, span := g.tracer.Start(ctx, "store."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs,
			telemetry.AttrStoreOp.String(op),
			attribute.String("db.system", g.name),
		)...),
	)
	defer span.End()

	_, err := g.breaker.Execute(func() (struct{}, error) {
		if readOnly {
			return struct{}{}, g.withRetry(ctx, op, fn)
		}
		return struct{}{}, fn(ctx)
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		err = fmt.Errorf("%s %s: %w: %w", g.name, op, domain.ErrUnavailable, err)
	}

	if err != nil && !domain.IsExpected(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	g.recordMetrics(ctx, op, start, err)
	return err
}

func (g *Gateway) recordMetrics(ctx context.Context, op string, start time.Time, err error) {
	if g.metrics == nil {
		return
	}

	result := string(domain.Classify(err))
	if errors.Is(err, domain.ErrUnavailable) {
		result = "circuit_open"
	}
	attrs := metric.WithAttributes(
		telemetry.AttrStoreOp.String(op),
		telemetry.AttrResult.String(result),
	)
	g.metrics.StoreRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
	g.metrics.StoreRequestTotal.Add(ctx, 1, attrs)
}

func entityAttrs(e board.Entity) []attribute.KeyValue {
	return []attribute.KeyValue{
		telemetry.AttrEntityKind.String(e.Kind().String()),
		attribute.String("entity.id", e.Identity().String()),
	}
}

// toUint32 converts a non-negative int to uint32, clamping at the uint32
// maximum. Negative values become zero.
func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
