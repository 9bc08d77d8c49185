package engine

import (
	"cmp"
	"salon/internal/domains/availability/model"
	"salon/shared/clock"
	"slices"
	"strings"
	"time"
)

const DefaultStepMinutes = 15

// SlotRequest describes one team member, location and date to generate slots for.
type SlotRequest struct {
	Date           time.Time
	TeamMemberID   string
	LocationID     string
	ServiceID      string
	Duration       int
	SetupMinutes   int
	CleanupMinutes int
	TravelMinutes  int
	StepMinutes    int
	NotBefore      clock.TimeOfDay
	Open           []clock.Interval
	Busy           []Occupancy
}

// GenerateSlots emits service starts on the step grid, aligned to midnight, whose
// occupied window fits inside one open interval and collides with nothing busy.
func GenerateSlots(req SlotRequest) []model.Slot {
	step := req.StepMinutes
	if step <= 0 {
		step = DefaultStepMinutes
	}

	slots := []model.Slot{}

	if req.Duration <= 0 {
		return slots
	}

	for _, in := range clock.Normalize(req.Open) {
		first := max(alignUp(in.Start+clock.TimeOfDay(req.SetupMinutes), step), alignUp(req.NotBefore, step))

		for start := first; start+clock.TimeOfDay(req.Duration+req.CleanupMinutes) <= in.End; start += clock.TimeOfDay(step) {
			candidate := Occupancy{
				LocationID:     req.LocationID,
				Service:        clock.Interval{Start: start, End: start + clock.TimeOfDay(req.Duration)},
				SetupMinutes:   req.SetupMinutes,
				CleanupMinutes: req.CleanupMinutes,
				TravelMinutes:  req.TravelMinutes,
			}

			if HasConflict(candidate, req.Busy) {
				continue
			}

			slots = append(slots, model.Slot{
				Date:         clock.DateOf(req.Date),
				TeamMemberID: req.TeamMemberID,
				LocationID:   req.LocationID,
				ServiceID:    req.ServiceID,
				Start:        candidate.Service.Start,
				End:          candidate.Service.End,
				Available:    true,
			})
		}
	}

	return slots
}

// SortSlots orders slots by date, start time and team member.
func SortSlots(slots []model.Slot) {
	slices.SortStableFunc(slots, func(a, b model.Slot) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}

		if c := cmp.Compare(a.Start, b.Start); c != 0 {
			return c
		}

		return strings.Compare(a.TeamMemberID, b.TeamMemberID)
	})
}

// NotBefore converts a cutoff instant, already in studio local time, into the
// earliest start allowed on date. ok is false when the whole date lies before it.
func NotBefore(date, cutoff time.Time) (earliest clock.TimeOfDay, ok bool) {
	date, day := clock.DateOf(date), clock.DateOf(cutoff)

	switch {
	case date.Before(day):
		return clock.Midnight, false
	case date.After(day):
		return clock.Midnight, true
	}

	earliest = clock.TimeOf(cutoff)
	if cutoff.Second() > 0 || cutoff.Nanosecond() > 0 {
		earliest++
	}

	return earliest, true
}

func alignUp(t clock.TimeOfDay, step int) clock.TimeOfDay {
	s := clock.TimeOfDay(step)

	return (t + s - 1) / s * s
}
