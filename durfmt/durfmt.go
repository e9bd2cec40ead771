// Package durfmt converts between decimal hours (the canonical stored
// duration encoding) and the human-facing hour/minute forms used by entry
// forms and summary displays.
package durfmt

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HoursMinutes splits decimal hours into whole hours and minutes in [0,59].
// Rounding the minute component to 60 carries over into the hour component,
// so 1.999 yields (2, 0) rather than (1, 60).
func HoursMinutes(decimalHours float64) (int, int) {
	if decimalHours <= 0 || math.IsNaN(decimalHours) || math.IsInf(decimalHours, 0) {
		return 0, 0
	}

	hours := int(math.Floor(decimalHours))
	minutes := int(math.Round((decimalHours - float64(hours)) * 60))
	if minutes >= 60 {
		hours += minutes / 60
		minutes %= 60
	}
	return hours, minutes
}

// Decimal combines separate hour and minute fields into decimal hours.
func Decimal(hours, minutes int) float64 {
	return float64(hours) + float64(minutes)/60.0
}

// FormatEnglish renders decimal hours as "2h", "30m" or "1h 30m".
// Zero, negative or non-finite input renders as "0m".
func FormatEnglish(decimalHours float64) string {
	hours, minutes := HoursMinutes(decimalHours)
	switch {
	case hours == 0 && minutes == 0:
		return "0m"
	case minutes == 0:
		return fmt.Sprintf("%dh", hours)
	case hours == 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
}

// ParseShorthand reads the comma-delimited "H,MM" entry shorthand, e.g.
// "1,30" -> 1.5. Digit-only input is read as whole hours. The parser is
// deliberately forgiving of partial live-typed text: incomplete or invalid
// input degrades to 0 (or a partial value as digits accumulate) and never
// produces an error.
func ParseShorthand(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	parts := strings.Split(text, ",")
	if len(parts) > 2 {
		return 0
	}

	hours := parseDigits(parts[0])
	if len(parts) == 1 {
		return float64(hours)
	}

	minutes := parseDigits(parts[1])
	return Decimal(hours, minutes)
}

func parseDigits(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0
	}
	return parsed
}
