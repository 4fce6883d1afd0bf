package analytics

import (
	"strings"
	"time"

	"chat-stats/domain"

	"github.com/google/uuid"
)

// Summary holds the headline counts of a scope.
type Summary struct {
	Messages int
	Words    int
	Media    int
	Links    int // messages with at least one URL
}

// FetchStats counts messages, words, media placeholders and messages carrying links.
// A message can count as both media and link.
func (e *Engine) FetchStats(scope string, store domain.Store) Summary {
	var summary Summary
	for _, r := range store.Filter(scope) {
		summary.Messages++
		summary.Words += len(strings.Fields(r.Body))
		if e.media.Matches(r.Body) {
			summary.Media++
		}
		if e.urls.MatchString(r.Body) {
			summary.Links++
		}
	}
	return summary
}

// SharedLink is one URL found in a message, with the record it came from.
type SharedLink struct {
	RecordID uuid.UUID
	At       time.Time
	Author   string
	URL      string
}

// ExtractLinks lists every URL of the scope in order of appearance.
func (e *Engine) ExtractLinks(scope string, store domain.Store) []SharedLink {
	links := make([]SharedLink, 0)
	for _, r := range store.Filter(scope) {
		for _, url := range e.urls.FindAllString(r.Body, -1) {
			links = append(links, SharedLink{RecordID: r.ID, At: r.Timestamp, Author: r.Author, URL: url})
		}
	}
	return links
}

// MediaBreakdown counts media messages per placeholder kind ("image omitted", "media omitted").
func (e *Engine) MediaBreakdown(scope string, store domain.Store) []TermCount {
	kinds := newCounter()
	for _, r := range store.Filter(scope) {
		if !e.media.Matches(r.Body) {
			continue
		}
		if found := e.media.Find(r.Body); len(found) > 0 {
			kinds.add(strings.ToLower(found[0]))
		}
	}
	return kinds.ranked()
}
