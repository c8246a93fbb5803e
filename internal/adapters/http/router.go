// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/boardsync/internal/adapters/http/dto"
	"github.com/jsamuelsen11/boardsync/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/boardsync/internal/adapters/http/middleware"
)

// DefaultHubPath is where the hub is mounted when Routes.HubPath is empty.
const DefaultHubPath = "/hubs/board"

// Routes bundles what NewRouter mounts.
type Routes struct {
	Board  *handlers.BoardHandler
	Health *handlers.HealthHandler

	// Hub serves the WebSocket upgrade. Nil leaves the hub unmounted.
	Hub     http.Handler
	HubPath string

	// APITimeout bounds every /api/v1 request. Zero disables the deadline.
	APITimeout time.Duration
}

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given. The request deadline is
// applied inside the /api/v1 group only, never to the hub connection.
func NewRouter(routes Routes, middlewares ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusNotFound, "no route matches "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		dto.WriteStatusResponse(w, r, http.StatusMethodNotAllowed, r.Method+" is not supported on "+r.URL.Path)
	})

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", routes.Health.Liveness)
	r.Get("/health/ready", routes.Health.Readiness)

	if routes.Hub != nil {
		path := routes.HubPath
		if path == "" {
			path = DefaultHubPath
		}
		r.Get(path, routes.Hub.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Chain(
			middleware.When(routes.APITimeout > 0, middleware.Timeout(routes.APITimeout)),
		))

		h := routes.Board

		// Boards.
		r.Get("/boards", h.ListBoards)
		r.Post("/boards", h.CreateBoard)
		r.Get("/boards/{id}", h.GetBoard)
		r.Patch("/boards/{id}", h.UpdateBoard)
		r.Delete("/boards/{id}", h.DeleteBoard)

		// Columns.
		r.Post("/boards/{id}/columns", h.CreateColumn)
		r.Patch("/columns/{id}", h.UpdateColumn)
		r.Delete("/columns/{id}", h.DeleteColumn)

		// Cards.
		r.Post("/columns/{id}/cards", h.CreateCard)
		r.Patch("/cards/{id}", h.UpdateCard)
		r.Delete("/cards/{id}", h.DeleteCard)
		r.Put("/cards/{id}/archive", h.ArchiveCard)
		r.Delete("/cards/{id}/archive", h.UnarchiveCard)

		// Labels.
		r.Post("/boards/{id}/labels", h.CreateLabel)
		r.Patch("/labels/{id}", h.UpdateLabel)
		r.Delete("/labels/{id}", h.DeleteLabel)

		// Ordering.
		r.Post("/moves", h.MoveItem)
		r.Post("/reorders", h.BulkReorder)
	})

	return r
}
