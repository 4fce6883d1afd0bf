package parser

import (
	"strings"
	"time"
	"unicode"
)

// strategy is one date convention, tried with each of its layouts.
type strategy struct {
	name    string
	layouts []string
}

func (s strategy) parse(value string, loc *time.Location) (time.Time, bool) {
	for _, layout := range s.layouts {
		if at, err := time.ParseInLocation(layout, value, loc); err == nil {
			return at, true
		}
	}
	return time.Time{}, false
}

// strategies are tried in order: day-first is the primary convention,
// month-first only catches dates that cannot be day-first (e.g. 1/13/23).
var strategies = []strategy{
	{
		name: "day-first",
		layouts: []string{
			"2/1/06 15:04", "2/1/2006 15:04",
			"2/1/06 3:04PM", "2/1/2006 3:04PM",
		},
	},
	{
		name: "month-first",
		layouts: []string{
			"1/2/06 15:04", "1/2/2006 15:04",
			"1/2/06 3:04PM", "1/2/2006 3:04PM",
		},
	},
}

// Normalizer converts the date and time text of a segment into an absolute time.
type Normalizer struct {
	loc *time.Location
}

func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{loc: loc}
}

// Normalize returns false when no strategy can read the timestamp.
func (n Normalizer) Normalize(date, clock string) (time.Time, bool) {
	value := strings.TrimSpace(date) + " " + compactClock(clock)
	for _, s := range strategies {
		if at, ok := s.parse(value, n.loc); ok {
			return at, true
		}
	}
	return time.Time{}, false
}

// compactClock removes spacing around the meridiem and upper-cases it: "9:05 pm" becomes "9:05PM".
func compactClock(clock string) string {
	var b strings.Builder
	b.Grow(len(clock))
	for _, r := range clock {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
