package leads

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Snapshot is the precomputed lead analytics payload served by the source.
type Snapshot struct {
	TotalLeads        int64 `json:"total_leads"`
	OpenLeads         int64 `json:"open_leads"`
	QualifiedLeads    int64 `json:"qualified_leads"`
	DisqualifiedLeads int64 `json:"disqualified_leads"`

	DailyLeads   Counts `json:"daily_leads"`
	WeeklyLeads  Counts `json:"weekly_leads"`
	MonthlyLeads Counts `json:"monthly_leads"`

	ProgramClassification   Counts `json:"program_classification"`
	BrandClassification     Counts `json:"brand_classification"`
	UTMMediumClassification Counts `json:"utm_medium_classification"`
}

// Count is one label:count entry of an ordered mapping.
type Count struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

// Counts is a label to count mapping that keeps the member order of the
// JSON object it was decoded from.
type Counts []Count

// UnmarshalJSON decodes a JSON object into entries in member order.
func (c *Counts) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*c = nil
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("leads: counts must be a JSON object")
	}

	out := Counts{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("leads: unexpected key %v", tok)
		}
		var num json.Number
		if err := dec.Decode(&num); err != nil {
			return fmt.Errorf("leads: count for %q: %w", label, err)
		}
		value, err := num.Int64()
		if err != nil {
			return fmt.Errorf("leads: count for %q is not an integer: %w", label, err)
		}
		out = append(out, Count{Label: label, Value: value})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// MarshalJSON encodes the entries back into a JSON object in order.
func (c Counts) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", entry.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Labels returns the entry labels in order.
func (c Counts) Labels() []string {
	labels := make([]string, 0, len(c))
	for _, entry := range c {
		labels = append(labels, entry.Label)
	}
	return labels
}

// Values returns the entry counts in order.
func (c Counts) Values() []int64 {
	values := make([]int64, 0, len(c))
	for _, entry := range c {
		values = append(values, entry.Value)
	}
	return values
}

// Buckets returns the time series for the granularity, nil when absent.
func (s *Snapshot) Buckets(g Granularity) Counts {
	if s == nil {
		return nil
	}
	switch g {
	case Daily:
		return s.DailyLeads
	case Weekly:
		return s.WeeklyLeads
	case Monthly:
		return s.MonthlyLeads
	default:
		return nil
	}
}
