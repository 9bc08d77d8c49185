package model

import (
	"salon/shared/clock"
	"salon/shared/model"
	"time"
)

type BlockType string

const (
	BlockTypeVacation    BlockType = "vacation"
	BlockTypeSick        BlockType = "sick"
	BlockTypePersonal    BlockType = "personal"
	BlockTypeTraining    BlockType = "training"
	BlockTypeMaintenance BlockType = "maintenance"
	BlockTypeOther       BlockType = "other"
)

type Recurrence string

const (
	RecurrenceNone   Recurrence = "none"
	RecurrenceDaily  Recurrence = "daily"
	RecurrenceWeekly Recurrence = "weekly"
)

// PeriodDays is the distance between occurrences, zero for a one-off block.
func (r Recurrence) PeriodDays() int {
	switch r {
	case RecurrenceDaily:
		return 1
	case RecurrenceWeekly:
		return 7
	default:
		return 0
	}
}

// BlockedTime removes time from availability regardless of rules. A block spanning
// several dates is continuous: it starts at StartTime on StartDate and ends at
// EndTime on EndDate. Recurring blocks repeat that span every period.
type BlockedTime struct {
	ID              string              `db:"id"`
	StudioID        string              `db:"studio_id"`
	TeamMemberID    *string             `db:"team_member_id"`
	LocationID      *string             `db:"location_id"`
	StartDate       time.Time           `db:"start_date"`
	EndDate         time.Time           `db:"end_date"`
	StartTime       clock.NullTimeOfDay `db:"start_time"`
	EndTime         clock.NullTimeOfDay `db:"end_time"`
	IsAllDay        bool                `db:"is_all_day"`
	BlockType       BlockType           `db:"block_type"`
	Reason          string              `db:"reason"`
	Recurrence      Recurrence          `db:"recurrence"`
	RecurrenceUntil *time.Time          `db:"recurrence_until"`
	model.Metadata
}

func (b BlockedTime) AppliesTo(scope Scope) bool {
	return matches(b.TeamMemberID, scope.TeamMemberID) && matches(b.LocationID, scope.LocationID)
}

// SpanDays is the number of days an occurrence runs past its first date.
func (b BlockedTime) SpanDays() int {
	return clock.DaysBetween(b.StartDate, b.EndDate) - 1
}

// IntervalsOn returns the part of date covered by the block, or nil.
func (b BlockedTime) IntervalsOn(date time.Time) []clock.Interval {
	date = clock.DateOf(date)
	first := clock.DateOf(b.StartDate)

	if date.Before(first) {
		return nil
	}

	span := b.SpanDays()
	occurrence := first

	if period := b.Recurrence.PeriodDays(); period > 0 {
		elapsed := clock.DaysBetween(first, date) - 1
		occurrence = first.AddDate(0, 0, elapsed/period*period)

		if b.RecurrenceUntil != nil && occurrence.After(clock.DateOf(*b.RecurrenceUntil)) {
			return nil
		}
	}

	last := occurrence.AddDate(0, 0, span)
	if date.After(last) {
		return nil
	}

	if b.IsAllDay {
		return []clock.Interval{{Start: clock.Midnight, End: clock.EndOfDay}}
	}

	in := clock.Interval{Start: clock.Midnight, End: clock.EndOfDay}

	if date.Equal(occurrence) && b.StartTime.Valid {
		in.Start = b.StartTime.Time
	}

	if date.Equal(last) && b.EndTime.Valid {
		in.End = b.EndTime.Time
	}

	if in.Empty() {
		return nil
	}

	return []clock.Interval{in}
}
