package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var numberRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// Roast date cells arrive in whatever format the submitter typed. Layouts are
// tried in order; anything else counts as unparsable.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2 Jan 2006",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// sortEpoch stands in for unparsable roast dates so they order before every
// real date instead of failing the sort.
var sortEpoch = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// parseNumber extracts a leading decimal number from a free-text cell like
// "9.5" or "18g". Thousands separators are tolerated.
func parseNumber(raw string) (float64, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	m := numberRegex.FindString(cleaned)
	if m == "" {
		return 0, false
	}
	val, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return val, true
}

// numberOrZero is the sort-engine fallback: unparsable cells count as zero.
func numberOrZero(raw string) float64 {
	val, _ := parseNumber(raw)
	return val
}

// parseDate tries each known layout against a trimmed date cell.
func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dateOrEpoch is the sort-engine fallback for roast dates.
func dateOrEpoch(raw string) time.Time {
	if t, ok := parseDate(raw); ok {
		return t
	}
	return sortEpoch
}
