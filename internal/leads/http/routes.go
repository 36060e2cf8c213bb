package leadhttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
)

// MountRoutes registers the dashboard endpoints onto the router.
func (h *Handler) MountRoutes(r chi.Router) {
	if h == nil {
		return
	}
	limiter := httprate.Limit(10, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	)

	r.Get("/", h.handleDashboard)
	r.Get("/leads", h.handleDashboard)
	r.Get("/api/leads/series", h.handleSeries)
	r.Get("/api/leads/status", h.handleStatus)
	r.Group(func(gr chi.Router) {
		gr.Use(limiter)
		gr.Get("/leads/export.csv", h.handleCSV)
	})
}
