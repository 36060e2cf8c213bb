package leads

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Granularity selects which time bucketing the chart shows.
type Granularity string

const (
	Daily   Granularity = "daily"
	Weekly  Granularity = "weekly"
	Monthly Granularity = "monthly"
)

// DefaultGranularity is used when no selection has been made.
const DefaultGranularity = Daily

// Granularities lists the selectable values in control order.
func Granularities() []Granularity {
	return []Granularity{Daily, Weekly, Monthly}
}

// ParseGranularity maps a user supplied value to a Granularity. Empty input
// yields the default.
func ParseGranularity(raw string) (Granularity, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "" {
		return DefaultGranularity, nil
	}
	for _, g := range Granularities() {
		if string(g) == value {
			return g, nil
		}
	}
	return "", fmt.Errorf("leads: unknown granularity %q", raw)
}

// Title returns the name with its first character upper-cased, e.g. "Daily".
func (g Granularity) Title() string {
	name := string(g)
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// SeriesName is the chart legend for the granularity, e.g. "Daily Leads".
func (g Granularity) SeriesName() string {
	return g.Title() + " Leads"
}
