package svg

// BarOpts customises the bar chart renderer.
type BarOpts struct {
	Title       string
	Description string
	SeriesLabel string
	Color       string
	AxisColor   string
	GridColor   string
	Padding     float64
	TickCount   int
}

// Defaults for the lead chart.
const (
	DefaultWidth   = 960
	DefaultHeight  = 320
	DefaultPadding = 32.0
	DefaultTicks   = 5
	DefaultColor   = "#4B9CD3"
)
