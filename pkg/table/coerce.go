// pkg/table/coerce.go
package table

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts covers the formats the spreadsheet reader emits for date
// cells, plus the ISO forms seen in hand-edited rows. Order matters:
// layouts with time components come before their date-only prefixes.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01-02-06 15:04",
	"01-02-06",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
	"1/2/06",
	"2-Jan-06",
	"02 Jan 2006",
}

// ParseDate parses s as a calendar date, discarding any time-of-day
// component. The second return is false when no layout matches.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			y, m, d := parsed.Date()
			return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// ParseNumber parses s as a float. Thousands separators are not
// accepted: "1,234" is not a number here.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// CoerceDate rewrites a text cell to a date cell, or to null when the
// text does not parse. Date cells pass through with their time-of-day
// truncated; anything else becomes null.
func CoerceDate(c Cell) Cell {
	switch c.Kind {
	case KindDate:
		return Date(c.Time)
	case KindText:
		if t, ok := ParseDate(c.Str); ok {
			return Date(t)
		}
	}
	return Null()
}

// CoerceNumber rewrites a text cell to a number cell, or to null when
// the text does not parse. Unparseable values are data, not errors.
func CoerceNumber(c Cell) Cell {
	switch c.Kind {
	case KindNumber:
		return c
	case KindText:
		if f, ok := ParseNumber(c.Str); ok {
			return Number(f)
		}
	}
	return Null()
}
