package analytics

import (
	"context"
	"testing"
	"time"

	"chat-stats/domain"

	"github.com/stretchr/testify/require"
)

func TestEngine_Dashboard(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	ctx := context.Background()
	store := wordsStore()

	overall, err := engine.Dashboard(ctx, domain.Overall, store, Limits{Words: 3, Users: 1, Emojis: 5})
	req.NoError(err)
	req.Equal(domain.Overall, overall.Scope)
	req.Equal(engine.FetchStats(domain.Overall, store), overall.Summary)
	req.Equal(engine.MediaBreakdown(domain.Overall, store), overall.MediaKinds)
	req.Equal(engine.ExtractLinks(domain.Overall, store), overall.Links)
	req.Equal(engine.MonthlyTimeline(domain.Overall, store), overall.Monthly)
	req.Equal(engine.DailyTimeline(domain.Overall, store), overall.Daily)
	req.Equal(engine.WeekActivityMap(domain.Overall, store), overall.Weekdays)
	req.Equal(engine.MonthActivityMap(domain.Overall, store), overall.Months)
	req.Equal(engine.ActivityHeatmap(domain.Overall, store), overall.Heatmap)
	req.Equal(engine.MostCommonWords(domain.Overall, store, 3), overall.Words)
	req.Equal(engine.WordCloudText(domain.Overall, store), overall.WordCloud)
	req.Len(overall.Words, 3)
	req.Len(overall.Participants, 1)
	req.Equal("Alice", overall.Participants[0].Author)

	alice, err := engine.Dashboard(ctx, "Alice", store, Limits{})
	req.NoError(err)
	req.Nil(alice.Participants)
	req.Equal(3, alice.Summary.Messages)
}

func TestEngine_Dashboard_Cancelled(t *testing.T) {
	req := require.New(t)
	engine := newEngine(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := newStore(entry{at(2023, time.June, 1, 10, 0), "Alice", "hello"})
	_, err := engine.Dashboard(ctx, domain.Overall, store, Limits{})
	req.ErrorIs(err, context.Canceled)
}
