package leadhttp

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/project-solar/leadboard/internal/leads"
	"github.com/project-solar/leadboard/internal/leads/export"
	"github.com/project-solar/leadboard/internal/leads/svg"
	"github.com/project-solar/leadboard/internal/leads/ui"
	"github.com/project-solar/leadboard/internal/platform/httpx"
	"github.com/project-solar/leadboard/internal/view"
)

const pageTitle = "Lead Analytics Dashboard"

// SnapshotSource exposes the load state of a mounted dashboard.
type SnapshotSource interface {
	State() leads.State
}

// Handler serves the lead analytics dashboard.
type Handler struct {
	logger    *slog.Logger
	source    SnapshotSource
	templates *view.Engine
	bar       ui.BarRenderer
	csvPool   sync.Pool
}

// NewHandler constructs the dashboard HTTP handler.
func NewHandler(logger *slog.Logger, source SnapshotSource, templates *view.Engine, bar ui.BarRenderer) *Handler {
	h := &Handler{
		logger:    logger,
		source:    source,
		templates: templates,
		bar:       bar,
	}
	h.csvPool.New = func() interface{} { return new(bytes.Buffer) }
	return h
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	g, err := parseView(r)
	if err != nil {
		http.Error(w, "invalid view", http.StatusBadRequest)
		return
	}

	vm, err := h.buildViewModel(r.URL.Path, h.source.State(), g)
	if err != nil {
		h.handleServerError(w, "render chart", err)
		return
	}

	data := view.TemplateData{
		Title:       pageTitle,
		CurrentPath: r.URL.Path,
		Data:        vm,
	}
	if err := h.templates.Render(w, "pages/dashboard.html", data); err != nil {
		h.handleServerError(w, "render template", err)
	}
}

func (h *Handler) handleSeries(w http.ResponseWriter, r *http.Request) {
	g, err := parseView(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	state := h.source.State()
	if !state.Loaded() {
		httpx.RespondError(w, fmt.Errorf("snapshot %s: %w", state.Status, httpx.ErrNotReady))
		return
	}
	httpx.JSON(w, http.StatusOK, leads.Project(state.Snapshot, g))
}

func (h *Handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, map[string]string{"status": string(h.source.State().Status)})
}

func (h *Handler) handleCSV(w http.ResponseWriter, r *http.Request) {
	g, err := parseView(r)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	state := h.source.State()
	if !state.Loaded() {
		httpx.RespondError(w, fmt.Errorf("snapshot %s: %w", state.Status, httpx.ErrNotReady))
		return
	}
	snapshot := state.Snapshot

	buf := h.csvPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		buf.Reset()
		h.csvPool.Put(buf)
	}()

	if err := export.WriteSummaryCSV(buf, snapshot); err != nil {
		h.handleServerError(w, "write summary csv", err)
		return
	}
	buf.WriteString("\n")
	if err := export.WriteSeriesCSV(buf, leads.Project(snapshot, g)); err != nil {
		h.handleServerError(w, "write series csv", err)
		return
	}
	sections := []struct {
		header string
		counts leads.Counts
	}{
		{"Program", snapshot.ProgramClassification},
		{"Brand", snapshot.BrandClassification},
		{"UTM Medium", snapshot.UTMMediumClassification},
	}
	for _, section := range sections {
		buf.WriteString("\n")
		if err := export.WriteCountsCSV(buf, section.header, section.counts); err != nil {
			h.handleServerError(w, "write breakdown csv", err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"leads-%s.csv\"", g))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logError("stream csv", err)
	}
}

func (h *Handler) buildViewModel(path string, state leads.State, g leads.Granularity) (ui.DashboardViewModel, error) {
	vm := ui.DashboardViewModel{View: g}
	if !state.Loaded() {
		return vm, nil
	}
	if h.bar == nil {
		return ui.DashboardViewModel{}, errors.New("svg renderer missing")
	}
	snapshot := state.Snapshot

	vm.Loaded = true
	vm.Stats = ui.ToStatCards(snapshot)
	vm.Controls = ui.ToControls(path, g)
	vm.Series = leads.Project(snapshot, g)
	vm.Breakdowns = ui.ToBreakdowns(snapshot)

	chart, err := h.bar.Bars(svg.DefaultWidth, svg.DefaultHeight, vm.Series.Floats(), vm.Series.Labels, svg.BarOpts{
		Title:       vm.Series.Name,
		Description: fmt.Sprintf("Lead count per %s bucket", g),
		SeriesLabel: vm.Series.Name,
	})
	if err != nil {
		return ui.DashboardViewModel{}, err
	}
	vm.ChartSVG = chart
	return vm, nil
}

func parseView(r *http.Request) (leads.Granularity, error) {
	g, err := leads.ParseGranularity(r.URL.Query().Get("view"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	return g, nil
}

func (h *Handler) handleServerError(w http.ResponseWriter, context string, err error) {
	h.logError(context, err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (h *Handler) logError(context string, err error) {
	if h.logger != nil {
		h.logger.Error(context, slog.Any("error", err))
	}
}
