package model

import (
	"salon/shared/clock"
	"slices"
	"time"
)

type PatternType string

const (
	PatternDaily   PatternType = "daily"
	PatternWeekly  PatternType = "weekly"
	PatternMonthly PatternType = "monthly"
	PatternCustom  PatternType = "custom"
)

// maxExpansionDays bounds how far occurrence expansion walks.
const maxExpansionDays = 3 * 366

// RecurringAppointment is a template for appointments that repeat. Only the
// expansion into concrete dates lives here; booking them is up to the caller.
type RecurringAppointment struct {
	ID             string
	StudioID       string
	ClientID       string
	TeamMemberID   string
	ServiceID      string
	LocationID     string
	PatternType    PatternType
	Interval       int
	DaysOfWeek     []time.Weekday
	StartDate      time.Time
	EndDate        *time.Time
	StartTime      clock.TimeOfDay
	MaxOccurrences int
}

// Occurrences lists the dates in [from, to] on which the template produces an
// appointment. Weekly and custom patterns repeat DaysOfWeek every Interval weeks;
// monthly patterns keep the start day and skip months that lack it.
func (r RecurringAppointment) Occurrences(from, to time.Time) []time.Time {
	start := clock.DateOf(r.StartDate)
	from, to = clock.DateOf(from), clock.DateOf(to)

	if r.EndDate != nil && clock.DateOf(*r.EndDate).Before(to) {
		to = clock.DateOf(*r.EndDate)
	}

	interval := max(r.Interval, 1)
	days := r.DaysOfWeek

	if len(days) == 0 {
		days = []time.Weekday{start.Weekday()}
	}

	var res []time.Time

	count := 0

	for offset := 0; offset <= maxExpansionDays; offset++ {
		date := start.AddDate(0, 0, offset)
		if date.After(to) {
			break
		}

		if !r.matches(start, date, interval, days) {
			continue
		}

		count++
		if r.MaxOccurrences > 0 && count > r.MaxOccurrences {
			break
		}

		if !date.Before(from) {
			res = append(res, date)
		}
	}

	return res
}

func (r RecurringAppointment) matches(start, date time.Time, interval int, days []time.Weekday) bool {
	elapsed := clock.DaysBetween(start, date) - 1

	switch r.PatternType {
	case PatternDaily:
		return elapsed%interval == 0
	case PatternWeekly, PatternCustom:
		weekStart := start.AddDate(0, 0, -int(start.Weekday()))
		weeks := (clock.DaysBetween(weekStart, date) - 1) / 7

		return weeks%interval == 0 && slices.Contains(days, date.Weekday())
	case PatternMonthly:
		months := (date.Year()-start.Year())*12 + int(date.Month()-start.Month())

		return date.Day() == start.Day() && months%interval == 0
	default:
		return false
	}
}
