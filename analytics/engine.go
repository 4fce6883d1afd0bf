// Package analytics computes the statistics of a parsed transcript.
// Every query is read-only over a domain.Store and takes the scope it is filtered by:
// domain.Overall or one participant. An empty projection gives an empty result.
package analytics

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"

	"chat-stats/domain"
	"chat-stats/moderation"

	"github.com/samber/lo"
	"mvdan.cc/xurls/v2"
)

// MediaMarkers are the placeholders exporters write instead of an attachment.
var MediaMarkers = []string{
	"<Media omitted>",
	"image omitted",
	"video omitted",
	"audio omitted",
	"sticker omitted",
	"GIF omitted",
	"document omitted",
	"Contact card omitted",
}

// DeletedMarkers replace the text of messages removed by their author.
var DeletedMarkers = []string{
	"This message was deleted",
	"You deleted this message",
}

// Engine holds the fixed tables the queries rely on. It is safe for concurrent use.
type Engine struct {
	media     moderation.Matcher
	deleted   moderation.Matcher
	urls      *regexp.Regexp
	stopwords map[string]struct{}
	log       *slog.Logger
}

func NewEngine(log *slog.Logger) (*Engine, error) {
	media, err := moderation.NewMatcher(MediaMarkers, log)
	if err != nil {
		return nil, fmt.Errorf("media markers: %w", err)
	}
	deleted, err := moderation.NewMatcher(DeletedMarkers, log)
	if err != nil {
		return nil, fmt.Errorf("deleted markers: %w", err)
	}
	return &Engine{
		media:     media,
		deleted:   deleted,
		urls:      xurls.Relaxed(),
		stopwords: loadStopwords(stopHinglish),
		log:       log,
	}, nil
}

// TermCount is one row of a frequency table.
type TermCount struct {
	Term  string
	Count int
}

// textual keeps the authored records carrying real text: no notification,
// media placeholder or deleted-message marker.
func (e *Engine) textual(scope string, store domain.Store) []domain.Record {
	return lo.Filter(store.Authored(scope), func(r domain.Record, _ int) bool {
		return !e.media.Matches(r.Body) && !e.deleted.Matches(r.Body)
	})
}

// counter counts keys and remembers the order they were first seen in.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// ranked sorts by descending count; ties keep first-seen order.
func (c *counter) ranked() []TermCount {
	rows := lo.Map(c.order, func(key string, _ int) TermCount {
		return TermCount{Term: key, Count: c.counts[key]}
	})
	slices.SortStableFunc(rows, func(a, b TermCount) int {
		return b.Count - a.Count
	})
	return rows
}
