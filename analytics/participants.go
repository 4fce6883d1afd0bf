package analytics

import (
	"math"

	"chat-stats/domain"

	"github.com/samber/lo"
)

// ParticipantShare is one participant's weight in the conversation.
type ParticipantShare struct {
	Author  string
	Count   int
	Share   float64 // percentage of authored messages, unrounded
	Percent float64 // Share rounded to two decimals
}

// MostBusyUsers ranks participants by message count, busiest first; ties keep the
// order participants first spoke in. Notifications are left out of both the ranking
// and the total the shares are computed against.
// It only makes sense for the Overall scope, so it takes no scope.
func (e *Engine) MostBusyUsers(store domain.Store) []ParticipantShare {
	records := store.Authored(domain.Overall)
	authors := newCounter()
	for _, r := range records {
		authors.add(r.Author)
	}
	total := float64(len(records))
	return lo.Map(authors.ranked(), func(row TermCount, _ int) ParticipantShare {
		share := float64(row.Count) / total * 100
		return ParticipantShare{
			Author:  row.Term,
			Count:   row.Count,
			Share:   share,
			Percent: math.Round(share*100) / 100,
		}
	})
}
