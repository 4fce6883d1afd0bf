// Package parser turns a raw exported transcript into a domain.Store.
// It splits the text on timestamp boundaries, normalizes timestamps,
// separates authors from system notifications and drops blank entries.
package parser

import (
	"regexp"
	"strings"
)

// space is a plain space or one of the no-break spaces newer exports put before AM/PM.
// Tabs and line breaks never separate the fields of a boundary.
const space = `[ \x{a0}\x{202f}]`

// boundary matches the head of an entry such as "31/12/23, 23:59 - " or "1/2/2024, 9:05 PM - ".
var boundary = regexp.MustCompile(
	`(?m)^(?P<date>\d{1,2}/\d{1,2}/\d{2,4}),` + space +
		`(?P<time>\d{1,2}:\d{2}(?:` + space + `?[APMapm]{2})?)` +
		space + `-` + space,
)

var (
	dateGroup = boundary.SubexpIndex("date")
	timeGroup = boundary.SubexpIndex("time")
)

// Segment is one transcript entry before any interpretation.
type Segment struct {
	Date string
	Time string
	Body string
}

// Split cuts raw into segments. Text before the first boundary is a preamble and is discarded.
// A transcript without any boundary gives no segment.
func Split(raw string) []Segment {
	matches := boundary.FindAllStringSubmatchIndex(raw, -1)
	segments := make([]Segment, 0, len(matches))
	for i, match := range matches {
		end := len(raw)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		segment, ok := newSegment(raw, match, end)
		if !ok {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

// newSegment reads the date and time captures of a boundary match and the body up to end.
// It rejects a match missing either capture.
func newSegment(raw string, match []int, end int) (Segment, bool) {
	date, ok := capture(raw, match, dateGroup)
	if !ok {
		return Segment{}, false
	}
	clock, ok := capture(raw, match, timeGroup)
	if !ok {
		return Segment{}, false
	}
	return Segment{
		Date: date,
		Time: clock,
		Body: strings.TrimRight(raw[match[1]:end], "\r\n"),
	}, true
}

func capture(raw string, match []int, group int) (string, bool) {
	if group < 0 || 2*group+1 >= len(match) {
		return "", false
	}
	start, stop := match[2*group], match[2*group+1]
	if start < 0 || start == stop {
		return "", false
	}
	return raw[start:stop], true
}
