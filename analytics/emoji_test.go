package analytics

import (
	"testing"
	"time"

	"chat-stats/domain"

	"github.com/stretchr/testify/require"
)

func TestEngine_EmojiFrequency(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	store := newStore(
		entry{at(2023, time.June, 1, 10, 0), "Alice", "haha 😂😂 🎉"},
		entry{at(2023, time.June, 1, 10, 1), "Bob", "🎉 party 🎉 😂"},
		entry{at(2023, time.June, 1, 10, 2), "Bob", "👍"},
		entry{at(2023, time.June, 1, 10, 3), domain.Notification, "Alice changed the group name to 🔥🔥🔥🔥"},
		entry{at(2023, time.June, 1, 10, 4), "Clara", "no emoji here :)"},
	)

	// Ties keep first-seen order, notifications are skipped
	req.Equal([]TermCount{{"😂", 3}, {"🎉", 3}, {"👍", 1}}, engine.EmojiFrequency(domain.Overall, store))
	req.Equal([]TermCount{{"🎉", 2}, {"😂", 1}, {"👍", 1}}, engine.EmojiFrequency("Bob", store))
	req.Empty(engine.EmojiFrequency("Clara", store))
}
