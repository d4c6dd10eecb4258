package core

import (
	"strings"
	"time"
)

// timestampLayouts are the date-time shapes seen in classifier output and
// bank spreadsheets, most specific first.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006/01/02",
	"2006.01.02 15:04:05",
	"2006.01.02",
}

// ParseTimestamp parses an ISO-ish date-time string. It returns ok=false
// when no known layout matches; callers are expected to substitute their
// own clock's now. That substitution is a deliberate lossy-but-available
// policy: a row with a broken date still counts toward every aggregate.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
