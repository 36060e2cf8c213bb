package ui

import (
	"html/template"

	"github.com/project-solar/leadboard/internal/leads"
	"github.com/project-solar/leadboard/internal/leads/svg"
)

// StatCard is one headline counter.
type StatCard struct {
	Title string
	Value int64
}

// ViewControl is a granularity selector rendered as a link.
type ViewControl struct {
	Label  string
	Value  string
	Href   string
	Active bool
}

// Breakdown is a titled label:count list.
type Breakdown struct {
	Title string
	Rows  leads.Counts
}

// DashboardViewModel combines everything the page template needs.
type DashboardViewModel struct {
	Loaded     bool
	View       leads.Granularity
	Stats      []StatCard
	Controls   []ViewControl
	Series     leads.Series
	ChartSVG   template.HTML
	Breakdowns []Breakdown
}

// BarRenderer abstracts SVG bar chart rendering for the dashboard.
type BarRenderer interface {
	Bars(width, height int, series []float64, labels []string, opts svg.BarOpts) (template.HTML, error)
}

// ToStatCards lists the summary counters in display order.
func ToStatCards(snapshot *leads.Snapshot) []StatCard {
	if snapshot == nil {
		return nil
	}
	return []StatCard{
		{Title: "Total Leads", Value: snapshot.TotalLeads},
		{Title: "Open Leads", Value: snapshot.OpenLeads},
		{Title: "Qualified Leads", Value: snapshot.QualifiedLeads},
		{Title: "Disqualified Leads", Value: snapshot.DisqualifiedLeads},
	}
}

// ToBreakdowns lists the classification mappings in display order.
func ToBreakdowns(snapshot *leads.Snapshot) []Breakdown {
	if snapshot == nil {
		return nil
	}
	return []Breakdown{
		{Title: "Leads by Program", Rows: snapshot.ProgramClassification},
		{Title: "Leads by Brand", Rows: snapshot.BrandClassification},
		{Title: "Leads by UTM Medium", Rows: snapshot.UTMMediumClassification},
	}
}

// ToControls builds the selector links for path, marking the active view.
func ToControls(path string, active leads.Granularity) []ViewControl {
	controls := make([]ViewControl, 0, 3)
	for _, g := range leads.Granularities() {
		controls = append(controls, ViewControl{
			Label:  g.Title(),
			Value:  string(g),
			Href:   path + "?view=" + string(g),
			Active: g == active,
		})
	}
	return controls
}
