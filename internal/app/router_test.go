package app

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/project-solar/leadboard/internal/leads"
	leadhttp "github.com/project-solar/leadboard/internal/leads/http"
	"github.com/project-solar/leadboard/internal/leads/svg"
	"github.com/project-solar/leadboard/internal/observability"
	"github.com/project-solar/leadboard/internal/view"
)

type fixedState leads.State

func (s fixedState) State() leads.State { return leads.State(s) }

type bars struct{}

func (bars) Bars(width, height int, series []float64, labels []string, opts svg.BarOpts) (template.HTML, error) {
	return svg.Bars(width, height, series, labels, opts)
}

func newTestRouter(t *testing.T, state leads.State) http.Handler {
	t.Helper()
	templates, err := view.NewEngine()
	require.NoError(t, err)
	source := fixedState(state)
	return NewRouter(RouterParams{
		Config:        &Config{AppEnv: "test"},
		LeadsHandler:  leadhttp.NewHandler(nil, source, templates, bars{}),
		Readiness:     source,
		Metrics:       observability.NewMetrics(),
		DisableLogger: true,
	})
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func TestRouterServesDashboard(t *testing.T) {
	router := newTestRouter(t, leads.State{Status: leads.StatusLoaded, Snapshot: &leads.Snapshot{TotalLeads: 10}})

	rr := get(router, "/")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Total Leads")
	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))
}

func TestRouterHealthAndReadiness(t *testing.T) {
	pending := newTestRouter(t, leads.State{Status: leads.StatusPending})
	assert.Equal(t, http.StatusOK, get(pending, "/healthz").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(pending, "/readyz").Code)

	loaded := newTestRouter(t, leads.State{Status: leads.StatusLoaded, Snapshot: &leads.Snapshot{}})
	assert.Equal(t, http.StatusOK, get(loaded, "/readyz").Code)
}

func TestRouterServesStaticAndMetrics(t *testing.T) {
	router := newTestRouter(t, leads.State{Status: leads.StatusPending})

	css := get(router, "/static/css/dashboard.css")
	assert.Equal(t, http.StatusOK, css.Code)
	assert.Equal(t, "public, max-age=3600", css.Header().Get("Cache-Control"))
	assert.Contains(t, css.Body.String(), ".stat-card")

	_ = get(router, "/")
	metrics := get(router, "/metrics")
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.True(t, strings.Contains(metrics.Body.String(), `leadboard_http_requests_total{code="200",route="/"}`), metrics.Body.String())
}
