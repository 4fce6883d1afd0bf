package analytics

import (
	"chat-stats/domain"

	"github.com/forPelevin/gomoji"
)

// EmojiFrequency counts every emoji of the scope's messages, most used first.
// Skin-tone and ZWJ sequences count as one emoji.
func (e *Engine) EmojiFrequency(scope string, store domain.Store) []TermCount {
	emojis := newCounter()
	for _, r := range store.Authored(scope) {
		for _, emoji := range gomoji.CollectAll(r.Body) {
			emojis.add(emoji.Character)
		}
	}
	return emojis.ranked()
}
