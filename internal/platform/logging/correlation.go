package logging

import "context"

type correlationKey struct{}

// WithCorrelationID stores the correlation ID used to tie an opaque error
// returned to a caller to the log lines that describe it.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID returns the correlation ID stored in ctx, or "".
func CorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationKey{}).(string); ok {
		return id
	}
	return ""
}
