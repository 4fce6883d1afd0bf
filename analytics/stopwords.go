package analytics

import (
	_ "embed"
	"strings"
)

//go:embed stop_hinglish.txt
var stopHinglish string

// loadStopwords reads one lower-case word per line. Blank lines are ignored.
func loadStopwords(list string) map[string]struct{} {
	words := make(map[string]struct{})
	for _, line := range strings.Split(list, "\n") {
		word := strings.ToLower(strings.TrimSpace(line))
		if word == "" {
			continue
		}
		words[word] = struct{}{}
	}
	return words
}
