package domain

import (
	"fmt"
	"time"
)

// Weekdays lists day names in the order used by activity maps and heatmaps.
var Weekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}

// HourBucket labels the one-hour window starting at hour.
// The last window of the day wraps to midnight: 23 gives "23-00".
func HourBucket(hour int) string {
	if hour == 23 {
		return "23-00"
	}
	return fmt.Sprintf("%d-%d", hour, hour+1)
}

// HourBuckets returns the 24 bucket labels in time-of-day order.
func HourBuckets() []string {
	buckets := make([]string, 24)
	for h := range buckets {
		buckets[h] = HourBucket(h)
	}
	return buckets
}

// CalendarDate drops the time of day, keeping the location of at.
func CalendarDate(at time.Time) time.Time {
	year, month, day := at.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, at.Location())
}

// WeekdayIndex gives the row of a weekday in Weekdays (Monday is 0).
func WeekdayIndex(day time.Weekday) int {
	return (int(day) + 6) % 7
}
