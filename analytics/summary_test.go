package analytics

import (
	"testing"
	"time"

	"chat-stats/domain"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestEngine_FetchStats(t *testing.T) {
	engine := newEngine(t)
	store := newStore(
		entry{at(2023, time.May, 2, 10, 0), "Alice", "hello there friend"},
		entry{at(2023, time.May, 2, 10, 1), "Alice", "<Media omitted>"},
		entry{at(2023, time.May, 2, 10, 2), "Bob", "look https://go.dev and www.example.org"},
		entry{at(2023, time.May, 2, 10, 3), "Bob", "\u200eimage omitted"},
		entry{at(2023, time.May, 2, 10, 4), "Alice", "no link in here"},
		entry{at(2023, time.May, 2, 10, 5), domain.Notification, "Bob changed the group description"},
	)

	tests := []struct {
		scope    string
		expected Summary
	}{
		{domain.Overall, Summary{Messages: 6, Words: 20, Media: 2, Links: 1}},
		{"Alice", Summary{Messages: 3, Words: 9, Media: 1, Links: 0}},
		{"Bob", Summary{Messages: 2, Words: 6, Media: 1, Links: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.expected, engine.FetchStats(tt.scope, store))
		})
	}
}

func TestEngine_FetchStats_MediaAndLink(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	store := newStore(
		entry{at(2024, time.March, 1, 8, 0), "Clara", "https://example.com/photo.jpg"},
		entry{at(2024, time.March, 1, 8, 1), "Clara", "<Media omitted>"},
	)

	summary := engine.FetchStats("Clara", store)
	req.Equal(2, summary.Messages)
	req.Equal(1, summary.Media)
	req.Equal(1, summary.Links)
}

func TestEngine_ExtractLinks(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	store := newStore(
		entry{at(2024, time.March, 1, 8, 0), "Clara", "two links https://a.example.com and https://b.example.com/x"},
		entry{at(2024, time.March, 1, 8, 1), "Dan", "https://go.dev"},
	)
	records := store.Records()

	links := engine.ExtractLinks(domain.Overall, store)
	req.Equal([]string{"https://a.example.com", "https://b.example.com/x", "https://go.dev"},
		lo.Map(links, func(l SharedLink, _ int) string { return l.URL }))
	req.Equal(records[0].ID, links[1].RecordID)
	req.Equal("Clara", links[1].Author)

	dan := engine.ExtractLinks("Dan", store)
	req.Equal([]SharedLink{{RecordID: records[1].ID, At: records[1].Timestamp, Author: "Dan", URL: "https://go.dev"}}, dan)
}

func TestEngine_MediaBreakdown(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	store := newStore(
		entry{at(2024, time.March, 1, 8, 0), "Clara", "<Media omitted>"},
		entry{at(2024, time.March, 1, 8, 1), "Dan", "\u200eimage omitted"},
		entry{at(2024, time.March, 1, 8, 2), "Clara", "IMAGE OMITTED"},
		entry{at(2024, time.March, 1, 8, 3), "Clara", "image omitted but with a caption"},
	)

	req.Equal([]TermCount{{"image omitted", 2}, {"media omitted", 1}}, engine.MediaBreakdown(domain.Overall, store))
	req.Equal([]TermCount{{"media omitted", 1}, {"image omitted", 1}}, engine.MediaBreakdown("Clara", store))
	req.Empty(engine.MediaBreakdown("Nobody", store))
}
