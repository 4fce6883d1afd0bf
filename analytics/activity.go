package analytics

import (
	"slices"
	"time"

	"chat-stats/domain"

	"github.com/samber/lo"
)

// Bucket is the message count of one category (a day name or a month name).
type Bucket struct {
	Label string
	Count int
}

// Heatmap counts messages per weekday (rows) and hour bucket (columns).
type Heatmap struct {
	Days    []string
	Buckets []string
	Counts  [7][24]int
}

// WeekActivityMap always lists the seven days, busiest first; ties keep Monday-to-Sunday order.
func (e *Engine) WeekActivityMap(scope string, store domain.Store) []Bucket {
	counts := lo.CountValuesBy(store.Filter(scope), func(r domain.Record) string {
		return r.DayName
	})
	buckets := lo.Map(domain.Weekdays, func(day time.Weekday, _ int) Bucket {
		return Bucket{Label: day.String(), Count: counts[day.String()]}
	})
	return busiestFirst(buckets)
}

// MonthActivityMap lists the months the scope was active in, busiest first;
// ties keep calendar order. Months of different years are merged.
func (e *Engine) MonthActivityMap(scope string, store domain.Store) []Bucket {
	counts := lo.CountValuesBy(store.Filter(scope), func(r domain.Record) time.Month {
		return r.MonthNum
	})
	buckets := make([]Bucket, 0, len(counts))
	for month := time.January; month <= time.December; month++ {
		if count, ok := counts[month]; ok {
			buckets = append(buckets, Bucket{Label: month.String(), Count: count})
		}
	}
	return busiestFirst(buckets)
}

// ActivityHeatmap fills every (weekday, hour bucket) cell; cells without messages stay at zero.
func (e *Engine) ActivityHeatmap(scope string, store domain.Store) Heatmap {
	heatmap := Heatmap{
		Days: lo.Map(domain.Weekdays, func(day time.Weekday, _ int) string {
			return day.String()
		}),
		Buckets: domain.HourBuckets(),
	}
	for _, r := range store.Filter(scope) {
		heatmap.Counts[domain.WeekdayIndex(r.Timestamp.Weekday())][r.Hour]++
	}
	return heatmap
}

// Cell returns the count of a day name and hour bucket label, zero when either is unknown.
func (h Heatmap) Cell(day, bucket string) int {
	row := slices.Index(h.Days, day)
	col := slices.Index(h.Buckets, bucket)
	if row < 0 || col < 0 {
		return 0
	}
	return h.Counts[row][col]
}

func busiestFirst(buckets []Bucket) []Bucket {
	slices.SortStableFunc(buckets, func(a, b Bucket) int {
		return b.Count - a.Count
	})
	return buckets
}
