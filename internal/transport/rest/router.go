package rest

import "net/http"

// Handlers bundles everything the router mounts.
type Handlers struct {
	Items  *ItemHandler
	Stats  *StatsHandler
	Health *HealthHandler
}

// NewRouter mounts all REST routes on a fresh mux. Middleware is applied by
// the caller around the returned handler.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/items", h.Items.Capture)
	mux.HandleFunc("GET /api/items", h.Items.List)
	mux.HandleFunc("POST /api/items/{id}/resolve", h.Items.Resolve)
	mux.HandleFunc("POST /api/items/{id}/discard", h.Items.Discard)

	mux.HandleFunc("GET /api/stats", h.Stats.Stats)
	mux.HandleFunc("POST /api/ping", h.Stats.Ping)

	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)

	return mux
}
