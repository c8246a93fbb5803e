package middleware

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/boardsync/internal/platform/logging"
)

const headerCorrelationID = "X-Correlation-ID"

// CorrelationIDFromContext extracts the correlation ID from the context.
// Returns an empty string if no correlation ID is stored.
func CorrelationIDFromContext(ctx context.Context) string {
	return logging.CorrelationID(ctx)
}

// CorrelationID returns middleware that extracts or derives an
// X-Correlation-ID for each request. A usable incoming header is reused;
// otherwise the request ID from context is used. The ID is stored with
// logging.WithCorrelationID, where the service layer picks it up for opaque
// errors, and set as a response header.
//
// This middleware must run after RequestID so that the fallback value is
// available.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := inboundID(r.Header.Get(headerCorrelationID))
			if id == "" {
				id = RequestIDFromContext(r.Context())
			}
			ctx := logging.WithCorrelationID(r.Context(), id)
			w.Header().Set(headerCorrelationID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
