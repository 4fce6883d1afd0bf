// Package domain contains core concepts of the chat statistics.
// This file defines participants and the scopes queries are filtered by.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"slices"

	"github.com/samber/lo"
)

// Participants lists the distinct authors of the store, sorted, without the notification sentinel.
func (s Store) Participants() []string {
	authors := lo.Uniq(lo.FilterMap(s.records, func(r Record, _ int) (string, bool) {
		return r.Author, !r.IsNotification()
	}))
	slices.Sort(authors)
	return authors
}

// Scopes is the selector list offered to callers: Overall first, then every participant.
func (s Store) Scopes() []string {
	return append([]string{Overall}, s.Participants()...)
}

// HasScope reports whether scope can be queried against this store.
func (s Store) HasScope(scope string) bool {
	return scope == Overall || lo.Contains(s.Participants(), scope)
}
