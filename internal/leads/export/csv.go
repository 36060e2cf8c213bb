package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/project-solar/leadboard/internal/leads"
)

// WriteSummaryCSV serialises the headline counters.
func WriteSummaryCSV(w io.Writer, snapshot *leads.Snapshot) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	records := [][]string{
		{"Total Leads", formatInt(snapshot.TotalLeads)},
		{"Open Leads", formatInt(snapshot.OpenLeads)},
		{"Qualified Leads", formatInt(snapshot.QualifiedLeads)},
		{"Disqualified Leads", formatInt(snapshot.DisqualifiedLeads)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCountsCSV emits a label:count mapping in its existing order.
func WriteCountsCSV(w io.Writer, header string, counts leads.Counts) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{header, "Leads"}); err != nil {
		return err
	}
	for _, entry := range counts {
		if err := writer.Write([]string{entry.Label, formatInt(entry.Value)}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteSeriesCSV emits the projected chart series.
func WriteSeriesCSV(w io.Writer, series leads.Series) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"Bucket", series.Name}); err != nil {
		return err
	}
	for i, label := range series.Labels {
		if err := writer.Write([]string{label, formatInt(series.Counts[i])}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}
