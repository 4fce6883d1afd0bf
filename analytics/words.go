package analytics

import (
	"strings"
	"unicode"

	"chat-stats/domain"
)

// MostCommonWords returns the n most used words of the scope, most frequent first.
// Words are lower-cased whitespace tokens; stopwords and tokens without any letter
// or digit are skipped. n <= 0 returns the full table.
func (e *Engine) MostCommonWords(scope string, store domain.Store, n int) []TermCount {
	words := newCounter()
	for _, token := range e.tokens(scope, store) {
		words.add(token)
	}
	return top(words.ranked(), n)
}

// WordCloudText joins the tokens MostCommonWords counts, in transcript order.
// The same store and scope always give the same text.
func (e *Engine) WordCloudText(scope string, store domain.Store) string {
	return strings.Join(e.tokens(scope, store), " ")
}

func (e *Engine) tokens(scope string, store domain.Store) []string {
	tokens := make([]string, 0)
	for _, r := range e.textual(scope, store) {
		for _, field := range strings.Fields(strings.ToLower(r.Body)) {
			if !isWord(field) {
				continue
			}
			if _, ok := e.stopwords[field]; ok {
				continue
			}
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// isWord rejects tokens made only of punctuation, symbols or emoji.
func isWord(token string) bool {
	return strings.IndexFunc(token, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}) >= 0
}
