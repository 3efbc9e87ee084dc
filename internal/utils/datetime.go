// Package utils holds small helpers shared by handlers: timestamp parsing
// for incoming requests and the display-format table the presentation
// layer picks from when rendering start times.
package utils

import (
	"errors"
	"strings"
	"time"
)

// dbLayout is the storage timestamp layout ("2006-01-02 15:04:05", UTC).
const dbLayout = "2006-01-02 15:04:05"

// inputLayouts are the accepted forms for incoming start_time strings, in
// the order they are tried. The middle layout covers ISO-8601 without a
// zone designator, which the original form submissions used.
var inputLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	dbLayout,
}

// displayFormats maps a format option name to its effective Go layout.
// The presentation layer chooses by name; unknown names fall back to
// "medium" in FormatDisplay.
var displayFormats = map[string]string{
	"full":   "Monday January 2, 2006 at 3:04PM",
	"medium": "Mon Jan 02, 2006 3:04PM",
}

// ErrBadTimestamp is returned when a timestamp string matches none of the
// accepted input layouts.
var ErrBadTimestamp = errors.New("unparseable timestamp")

// ParseTimestamp parses a request-supplied timestamp string. Values
// without a zone designator are interpreted as UTC. It returns
// ErrBadTimestamp when no layout matches.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrBadTimestamp
}

// ToDBTime normalizes a parsed timestamp into the storage layout in UTC.
func ToDBTime(t time.Time) string {
	return t.UTC().Format(dbLayout)
}

// ToISO8601 converts a storage timestamp into an RFC 3339 string for the
// all-shows view.
func ToISO8601(ts string) (string, error) {
	t, err := time.ParseInLocation(dbLayout, ts, time.UTC)
	if err != nil {
		return "", err
	}
	return t.Format(time.RFC3339), nil
}

// FormatDisplay renders a storage timestamp with the named display format
// option. Unknown options fall back to the medium style.
func FormatDisplay(ts, option string) (string, error) {
	t, err := time.ParseInLocation(dbLayout, ts, time.UTC)
	if err != nil {
		return "", err
	}
	layout, ok := displayFormats[option]
	if !ok {
		layout = displayFormats["medium"]
	}
	return t.Format(layout), nil
}
