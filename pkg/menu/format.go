package menu

import (
	"fmt"
	"strings"
	"time"
)

const (
	layoutISO  = "2006-01-02"
	layoutLong = "2 January 2006"

	// InvalidDate is the literal marker rendered for dates that fail to
	// parse. Screens print it verbatim instead of erroring.
	InvalidDate = "Invalid Date"
)

// FormatCreationDate renders an ISO-ish date string in the long form used
// across the menu screens, e.g. "4 March 2025".
func FormatCreationDate(raw string) string {
	t, ok := parseDate(raw)
	if !ok {
		return InvalidDate
	}
	return t.Format(layoutLong)
}

// ShortDate truncates a creation date to its YYYY-MM-DD prefix, matching the
// compact rendering on the version list.
func ShortDate(raw string) string {
	if len(raw) >= len(layoutISO) {
		return raw[:len(layoutISO)]
	}
	return raw
}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		layoutISO,
	} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatPrice renders a food price in euros, or an empty string when the
// price is unknown (zero/absent) so callers can skip the line entirely.
func FormatPrice(price float64) string {
	if price <= 0 {
		return ""
	}
	return fmt.Sprintf("%.2f€", price)
}

// FormatDollar renders an aggregate price in the dollar style the library
// listing uses.
func FormatDollar(price float64) string {
	return fmt.Sprintf("$%.2f", price)
}
