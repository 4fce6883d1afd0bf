package moderation

import (
	"fmt"
	"log/slog"
	"slices"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Matcher recognises export markers (media placeholders, deleted messages) inside message bodies.
// Matching ignores case, spacing, punctuation and invisible format characters,
// so "<Media omitted>" and an "image omitted" preceded by a direction mark are both found.
type Matcher struct {
	machine *goahocorasick.Machine
	log     *slog.Logger
}

type textMapping struct {
	Normalized []rune
	OrigIdx    []int
}

// NewMatcher initializes the Aho-Corasick automaton with a normalized version of the markers.
// Markers made only of noise are skipped.
func NewMatcher(markers []string, log *slog.Logger) (Matcher, error) {
	seen := make(map[string]struct{}, len(markers))
	patterns := make([][]rune, 0, len(markers))
	for _, marker := range markers {
		normalized := normalizeRunes([]rune(marker))
		if len(normalized) == 0 {
			log.Debug("Skipping empty marker", "marker", marker)
			continue
		}
		if _, ok := seen[string(normalized)]; ok {
			continue
		}
		seen[string(normalized)] = struct{}{}
		patterns = append(patterns, normalized)
	}
	if len(patterns) == 0 {
		return Matcher{log: log}, nil
	}
	slices.SortFunc(patterns, func(a, b []rune) int {
		return slices.Compare(a, b)
	})

	m := new(goahocorasick.Machine)
	if err := m.Build(patterns); err != nil {
		return Matcher{}, fmt.Errorf("building marker automaton: %w", err)
	}
	return Matcher{machine: m, log: log}, nil
}

// Find returns the original text of every marker occurrence, in order of appearance.
func (m Matcher) Find(text string) []string {
	if m.machine == nil {
		return nil
	}
	mapping := normalize(text)
	if len(mapping.Normalized) == 0 {
		return nil
	}

	origRunes := []rune(text)
	var found []string
	for _, span := range m.machine.MultiPatternSearch(mapping.Normalized, false) {
		normStart := span.Pos
		normEnd := normStart + len(span.Word)
		if normStart < 0 || normEnd > len(mapping.OrigIdx) {
			continue
		}
		origStart := mapping.OrigIdx[normStart]
		origEnd := mapping.OrigIdx[normEnd-1] + 1
		found = append(found, string(origRunes[origStart:origEnd]))
	}
	return found
}

// Matches reports whether the whole text is a single marker, surrounding noise aside.
func (m Matcher) Matches(text string) bool {
	if m.machine == nil {
		return false
	}
	mapping := normalize(text)
	if len(mapping.Normalized) == 0 {
		return false
	}
	for _, span := range m.machine.MultiPatternSearch(mapping.Normalized, false) {
		if span.Pos == 0 && len(span.Word) == len(mapping.Normalized) {
			return true
		}
	}
	return false
}

// normalize transforms the input string into a searchable format and tracks original rune positions.
func normalize(input string) textMapping {
	origRunes := []rune(input)
	norm := make([]rune, 0, len(origRunes))
	origIdx := make([]int, 0, len(origRunes))

	for i, r := range origRunes {
		if isNoise(r) {
			continue
		}
		norm = append(norm, unicode.ToLower(r))
		origIdx = append(origIdx, i)
	}
	return textMapping{Normalized: norm, OrigIdx: origIdx}
}

// normalizeRunes applies noise removal and lower-casing to a slice of runes.
func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if isNoise(r) {
			continue
		}
		out = append(out, unicode.ToLower(r))
	}
	return out
}

// isNoise identifies characters that should be ignored during the pattern matching phase.
func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) || unicode.Is(unicode.Cf, r)
}
