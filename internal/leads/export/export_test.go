package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/project-solar/leadboard/internal/leads"
)

func readCSV(t *testing.T, buf *bytes.Buffer) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	if err != nil {
		t.Fatalf("csv read error: %v", err)
	}
	return records
}

func TestWriteSummaryCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	snap := &leads.Snapshot{TotalLeads: 10, OpenLeads: 4, QualifiedLeads: 3, DisqualifiedLeads: 3}
	if err := WriteSummaryCSV(buf, snap); err != nil {
		t.Fatalf("summary csv error: %v", err)
	}
	records := readCSV(t, buf)
	if len(records) != 5 {
		t.Fatalf("expected header and 4 rows, got %d", len(records))
	}
	if records[1][1] != "10" || records[4][0] != "Disqualified Leads" {
		t.Fatalf("unexpected rows %v", records)
	}
}

func TestWriteCountsCSVKeepsOrder(t *testing.T) {
	buf := &bytes.Buffer{}
	counts := leads.Counts{{Label: "zeta, inc", Value: 2}, {Label: "alpha", Value: 7}}
	if err := WriteCountsCSV(buf, "Program", counts); err != nil {
		t.Fatalf("counts csv error: %v", err)
	}
	records := readCSV(t, buf)
	if records[0][0] != "Program" {
		t.Fatalf("unexpected header %v", records[0])
	}
	if records[1][0] != "zeta, inc" || records[2][0] != "alpha" {
		t.Fatalf("expected source order, got %v", records)
	}
}

func TestWriteSeriesCSV(t *testing.T) {
	buf := &bytes.Buffer{}
	series := leads.Series{Name: "Daily Leads", Labels: []string{"2024-01-01", "2024-01-02"}, Counts: []int64{2, 5}}
	if err := WriteSeriesCSV(buf, series); err != nil {
		t.Fatalf("series csv error: %v", err)
	}
	records := readCSV(t, buf)
	if len(records) != 3 || records[0][1] != "Daily Leads" || records[2][1] != "5" {
		t.Fatalf("unexpected rows %v", records)
	}
}
