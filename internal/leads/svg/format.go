package svg

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var tickPrinter = message.NewPrinter(language.English)

func fallback(value, defaultValue string) string {
	if strings.TrimSpace(value) == "" {
		return defaultValue
	}
	return value
}

func maxValue(series []float64) float64 {
	var maxVal float64
	for i, v := range series {
		if i == 0 || v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func makeID(base, suffix string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, strings.ToLower(strings.TrimSpace(base)))
	cleaned = strings.Trim(cleaned, "-")
	if cleaned == "" {
		cleaned = "chart"
	}
	return cleaned + "-" + suffix
}

// formatTick renders an axis value with digit grouping, e.g. 1500 -> "1,500".
func formatTick(v float64) string {
	if almostEqual(v, math.Round(v)) {
		return tickPrinter.Sprintf("%d", int64(math.Round(v)))
	}
	return tickPrinter.Sprintf("%.1f", v)
}

// formatValue renders a data value exactly as received.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
