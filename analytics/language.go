package analytics

import (
	"chat-stats/domain"

	"github.com/abadojack/whatlanggo"
)

// LanguageBreakdown counts messages per detected ISO 639-1 language code.
// Messages whose detection is not reliable (often very short ones) are not counted.
func (e *Engine) LanguageBreakdown(scope string, store domain.Store) []TermCount {
	languages := newCounter()
	var unreliable int
	for _, r := range e.textual(scope, store) {
		info := whatlanggo.Detect(r.Body)
		if !info.IsReliable() || info.Lang.Iso6391() == "" {
			unreliable++
			continue
		}
		languages.add(info.Lang.Iso6391())
	}
	e.log.Debug("Language detection done", "scope", scope, "unreliable", unreliable)
	return languages.ranked()
}
