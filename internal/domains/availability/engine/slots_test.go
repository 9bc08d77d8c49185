package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salon/internal/domains/availability/engine"
	"salon/internal/domains/availability/model"
	"salon/shared/clock"
)

func starts(slots []model.Slot) []string {
	res := make([]string, len(slots))
	for i, s := range slots {
		res[i] = s.Start.String()
	}

	return res
}

func TestGenerateSlots_SkipsBlockedLunch(t *testing.T) {
	rules := []model.AvailabilityRule{rule(model.LevelTeamMember, model.RuleTypeWorkingHours, "09:00", "17:00", true)}
	blocks := []model.BlockedTime{{
		TeamMemberID: ptr("tm-1"),
		StartDate:    monday,
		EndDate:      monday,
		StartTime:    clock.NullTimeOfDay{Time: clock.MustParse("12:00"), Valid: true},
		EndTime:      clock.NullTimeOfDay{Time: clock.MustParse("13:00"), Valid: true},
	}}

	slots := engine.GenerateSlots(engine.SlotRequest{
		Date:         monday,
		TeamMemberID: "tm-1",
		LocationID:   "loc-1",
		ServiceID:    "svc-1",
		Duration:     30,
		Open:         engine.OpenIntervals(monday, scope, rules, blocks),
	})

	require.NotEmpty(t, slots)

	for _, s := range slots {
		inLunch := s.Start >= clock.MustParse("11:45") && s.Start < clock.MustParse("13:00")
		assert.False(t, inLunch, "slot %s runs into the blocked lunch", s.Start)
		assert.Equal(t, s.Start+30, s.End)
		assert.True(t, s.Available)
		assert.Equal(t, "tm-1", s.TeamMemberID)
	}

	assert.Equal(t, "09:00", slots[0].Start.String())
	assert.Equal(t, "16:30", slots[len(slots)-1].Start.String())
	assert.Contains(t, starts(slots), "11:30")
	assert.Contains(t, starts(slots), "13:00")
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name string
		req  engine.SlotRequest
		want []string
	}{
		{
			name: "setup and cleanup must fit in the open interval",
			req: engine.SlotRequest{
				Duration: 30, SetupMinutes: 10, CleanupMinutes: 10, StepMinutes: 15,
				Open: []clock.Interval{iv("09:00", "10:30")},
			},
			want: []string{"09:15", "09:30", "09:45"},
		},
		{
			name: "grid is aligned to midnight",
			req: engine.SlotRequest{
				Duration: 30, StepMinutes: 30,
				Open: []clock.Interval{iv("09:10", "11:00")},
			},
			want: []string{"09:30", "10:00", "10:30"},
		},
		{
			name: "busy appointments are skipped",
			req: engine.SlotRequest{
				Duration: 60, StepMinutes: 60, LocationID: "loc-1",
				Open: []clock.Interval{iv("09:00", "13:00")},
				Busy: []engine.Occupancy{occ("a-1", "loc-1", "10:00", "11:00", 0, 0, 0)},
			},
			want: []string{"09:00", "11:00", "12:00"},
		},
		{
			name: "cutoff hides early starts",
			req: engine.SlotRequest{
				Duration: 30, StepMinutes: 15, NotBefore: clock.MustParse("09:20"),
				Open: []clock.Interval{iv("09:00", "10:00")},
			},
			want: []string{"09:30"},
		},
		{
			name: "service longer than any interval",
			req: engine.SlotRequest{
				Duration: 90,
				Open:     []clock.Interval{iv("09:00", "10:00"), iv("11:00", "12:00")},
			},
			want: []string{},
		},
		{
			name: "zero duration yields nothing",
			req: engine.SlotRequest{
				Open: []clock.Interval{iv("09:00", "10:00")},
			},
			want: []string{},
		},
		{
			name: "slot may end exactly at midnight",
			req: engine.SlotRequest{
				Duration: 60, StepMinutes: 60,
				Open: []clock.Interval{iv("22:00", "24:00")},
			},
			want: []string{"22:00", "23:00"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, starts(engine.GenerateSlots(tt.req)))
		})
	}
}

// Every generated slot must fit the open intervals and be conflict free when re-checked.
func TestGenerateSlots_Soundness(t *testing.T) {
	rules := []model.AvailabilityRule{
		rule(model.LevelStudio, model.RuleTypeWorkingHours, "08:00", "20:00", true),
		rule(model.LevelTeamMember, model.RuleTypeWorkingHours, "09:00", "18:00", true),
		rule(model.LevelTeamMember, model.RuleTypeBreak, "12:30", "13:15", false),
	}
	busy := []engine.Occupancy{
		occ("a-1", "loc-1", "09:40", "10:25", 5, 10, 20),
		occ("a-2", "loc-2", "14:00", "15:00", 0, 15, 30),
		occ("a-3", "loc-1", "16:50", "17:10", 10, 0, 0),
	}

	for _, step := range []int{5, 10, 15, 20, 30} {
		for _, duration := range []int{15, 30, 45, 60, 90} {
			for _, buffers := range [][3]int{{0, 0, 0}, {5, 10, 15}, {15, 0, 45}} {
				open := engine.OpenIntervals(monday, scope, rules, nil)

				slots := engine.GenerateSlots(engine.SlotRequest{
					Date:           monday,
					LocationID:     "loc-1",
					Duration:       duration,
					SetupMinutes:   buffers[0],
					CleanupMinutes: buffers[1],
					TravelMinutes:  buffers[2],
					StepMinutes:    step,
					Open:           open,
					Busy:           busy,
				})

				for _, s := range slots {
					candidate := engine.Occupancy{
						LocationID:     "loc-1",
						Service:        clock.Interval{Start: s.Start, End: s.End},
						SetupMinutes:   buffers[0],
						CleanupMinutes: buffers[1],
						TravelMinutes:  buffers[2],
					}

					assert.Equal(t, 0, int(s.Start)%step)
					assert.True(t, clock.Within(open, candidate.Window()), "slot %s outside open time", s.Start)
					assert.False(t, engine.HasConflict(candidate, busy), "slot %s conflicts", s.Start)
				}
			}
		}
	}
}

func TestNotBefore(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	cutoff := time.Date(2025, 9, 1, 10, 7, 30, 0, jakarta)

	_, ok := engine.NotBefore(monday.AddDate(0, 0, -1), cutoff)
	assert.False(t, ok)

	earliest, ok := engine.NotBefore(monday, cutoff)
	assert.True(t, ok)
	assert.Equal(t, "10:08", earliest.String())

	earliest, ok = engine.NotBefore(monday.AddDate(0, 0, 1), cutoff)
	assert.True(t, ok)
	assert.Equal(t, clock.Midnight, earliest)
}

func TestSortSlots(t *testing.T) {
	slots := []model.Slot{
		{Date: monday.AddDate(0, 0, 1), TeamMemberID: "tm-1", Start: clock.MustParse("09:00")},
		{Date: monday, TeamMemberID: "tm-2", Start: clock.MustParse("09:00")},
		{Date: monday, TeamMemberID: "tm-1", Start: clock.MustParse("10:00")},
		{Date: monday, TeamMemberID: "tm-1", Start: clock.MustParse("09:00")},
	}

	engine.SortSlots(slots)

	assert.Equal(t, []string{"tm-1", "tm-2", "tm-1", "tm-1"}, []string{slots[0].TeamMemberID, slots[1].TeamMemberID, slots[2].TeamMemberID, slots[3].TeamMemberID})
	assert.Equal(t, "10:00", slots[2].Start.String())
	assert.True(t, slots[3].Date.After(monday))
}
