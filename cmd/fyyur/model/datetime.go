package model

import (
	"fmt"
	"time"
)

// Display presets for start times. "full" spells out the weekday, "medium"
// abbreviates it.
const (
	dateTimeFull   = "Monday January, 2, 2006 at 3:04PM"
	dateTimeMedium = "Mon 01, 02, 06 3:04PM"
)

// startTimeLayouts are the textual forms accepted for submitted start times,
// tried in order.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// ParseStartTime parses a submitted start time from any accepted layout.
func ParseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}

// FormatDateTime renders t using the named preset. Unknown presets fall back
// to "medium".
func FormatDateTime(t time.Time, preset string) string {
	if preset == "full" {
		return t.Format(dateTimeFull)
	}
	return t.Format(dateTimeMedium)
}
