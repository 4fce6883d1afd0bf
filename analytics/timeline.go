package analytics

import (
	"fmt"
	"slices"
	"time"

	"chat-stats/domain"

	"github.com/samber/lo"
)

// TimelinePoint is the message count of one calendar month.
type TimelinePoint struct {
	Label string // "January-2023"
	Year  int
	Month time.Month
	Count int
}

// DailyPoint is the message count of one calendar date.
type DailyPoint struct {
	Date  time.Time
	Count int
}

type yearMonth struct {
	year  int
	month time.Month
}

// MonthlyTimeline groups the scope by (year, month) in chronological order.
func (e *Engine) MonthlyTimeline(scope string, store domain.Store) []TimelinePoint {
	counts := lo.CountValuesBy(store.Filter(scope), func(r domain.Record) yearMonth {
		return yearMonth{year: r.Year, month: r.MonthNum}
	})
	months := lo.Keys(counts)
	slices.SortFunc(months, func(a, b yearMonth) int {
		if a.year != b.year {
			return a.year - b.year
		}
		return int(a.month) - int(b.month)
	})
	return lo.Map(months, func(m yearMonth, _ int) TimelinePoint {
		return TimelinePoint{
			Label: fmt.Sprintf("%s-%d", m.month, m.year),
			Year:  m.year,
			Month: m.month,
			Count: counts[m],
		}
	})
}

// DailyTimeline groups the scope by calendar date in chronological order.
func (e *Engine) DailyTimeline(scope string, store domain.Store) []DailyPoint {
	records := store.Filter(scope)
	dates := make(map[string]time.Time)
	counts := lo.CountValuesBy(records, func(r domain.Record) string {
		key := r.Date.Format(time.DateOnly)
		dates[key] = r.Date
		return key
	})
	keys := lo.Keys(counts)
	slices.Sort(keys)
	return lo.Map(keys, func(key string, _ int) DailyPoint {
		return DailyPoint{Date: dates[key], Count: counts[key]}
	})
}
