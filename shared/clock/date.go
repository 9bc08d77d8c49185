package clock

import (
	"fmt"
	"time"
)

// ParseDate reads YYYY-MM-DD into midnight UTC.
func ParseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return date, nil
}

// DateOf drops the wall clock and location, keeping the civil date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}

// DaysBetween counts whole days from..to, inclusive of both ends.
func DaysBetween(from, to time.Time) int {
	return int(DateOf(to).Sub(DateOf(from)).Hours()/24) + 1
}

// Dates lists every civil date in [from, to].
func Dates(from, to time.Time) []time.Time {
	from, to = DateOf(from), DateOf(to)
	if to.Before(from) {
		return nil
	}

	dates := make([]time.Time, 0, DaysBetween(from, to))
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	return dates
}

// TimeOf reads the wall-clock minutes of t in its own location.
func TimeOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*MinutesPerHour + t.Minute())
}
