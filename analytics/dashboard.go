package analytics

import (
	"context"

	"chat-stats/domain"

	"golang.org/x/sync/errgroup"
)

// Limits caps the length of the ranked tables of a dashboard. Zero means no cap.
type Limits struct {
	Words  int
	Users  int
	Emojis int
}

// Dashboard bundles every statistic of one scope.
// Participants is only filled for the Overall scope.
type Dashboard struct {
	Scope        string
	Summary      Summary
	MediaKinds   []TermCount
	Links        []SharedLink
	Monthly      []TimelinePoint
	Daily        []DailyPoint
	Weekdays     []Bucket
	Months       []Bucket
	Heatmap      Heatmap
	Participants []ParticipantShare
	Words        []TermCount
	Emojis       []TermCount
	Languages    []TermCount
	WordCloud    string
}

// Dashboard computes the statistics concurrently. The store is only read,
// so the queries share it without locking.
func (e *Engine) Dashboard(ctx context.Context, scope string, store domain.Store, limits Limits) (Dashboard, error) {
	d := Dashboard{Scope: scope}
	g, ctx := errgroup.WithContext(ctx)

	run := func(query func()) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			query()
			return nil
		})
	}

	run(func() { d.Summary = e.FetchStats(scope, store) })
	run(func() { d.MediaKinds = e.MediaBreakdown(scope, store) })
	run(func() { d.Links = e.ExtractLinks(scope, store) })
	run(func() { d.Monthly = e.MonthlyTimeline(scope, store) })
	run(func() { d.Daily = e.DailyTimeline(scope, store) })
	run(func() { d.Weekdays = e.WeekActivityMap(scope, store) })
	run(func() { d.Months = e.MonthActivityMap(scope, store) })
	run(func() { d.Heatmap = e.ActivityHeatmap(scope, store) })
	run(func() { d.Words = e.MostCommonWords(scope, store, limits.Words) })
	run(func() { d.Emojis = top(e.EmojiFrequency(scope, store), limits.Emojis) })
	run(func() { d.Languages = e.LanguageBreakdown(scope, store) })
	run(func() { d.WordCloud = e.WordCloudText(scope, store) })
	if scope == domain.Overall {
		run(func() {
			users := e.MostBusyUsers(store)
			if limits.Users > 0 && len(users) > limits.Users {
				users = users[:limits.Users]
			}
			d.Participants = users
		})
	}

	if err := g.Wait(); err != nil {
		return Dashboard{}, err
	}
	return d, nil
}

func top(rows []TermCount, n int) []TermCount {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
