package leads

// Series is the labeled data bound to the bar chart.
type Series struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Counts []int64  `json:"counts"`
}

// Len reports the number of points.
func (s Series) Len() int { return len(s.Labels) }

// Floats returns the counts as float64 for the chart renderer.
func (s Series) Floats() []float64 {
	out := make([]float64, len(s.Counts))
	for i, v := range s.Counts {
		out[i] = float64(v)
	}
	return out
}

// Project derives the chart series for a granularity. A nil snapshot or a
// missing bucket mapping yields an empty series.
func Project(snapshot *Snapshot, g Granularity) Series {
	buckets := snapshot.Buckets(g)
	return Series{
		Name:   g.SeriesName(),
		Labels: buckets.Labels(),
		Counts: buckets.Values(),
	}
}
