package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"salon/internal/domains/waitlist/model"
	"salon/shared/clock"
	gModel "salon/shared/model"
)

func ptr[T any](v T) *T {
	return &v
}

func TestEntry_Matches(t *testing.T) {
	opening := model.Opening{
		ServiceID:    "svc-1",
		LocationID:   "loc-1",
		TeamMemberID: "tm-1",
		Date:         time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC),
		Start:        clock.MustParse("14:00"),
		End:          clock.MustParse("15:00"),
	}

	tests := []struct {
		name  string
		entry model.Entry
		want  bool
	}{
		{name: "no preferences", entry: model.Entry{IsActive: true}, want: true},
		{name: "inactive", entry: model.Entry{}, want: false},
		{name: "already fulfilled", entry: model.Entry{IsActive: true, FulfilledAppointmentID: ptr("appt-1")}, want: false},
		{name: "same service", entry: model.Entry{IsActive: true, ServiceID: ptr("svc-1")}, want: true},
		{name: "other service", entry: model.Entry{IsActive: true, ServiceID: ptr("svc-2")}, want: false},
		{name: "other team member", entry: model.Entry{IsActive: true, TeamMemberID: ptr("tm-2")}, want: false},
		{
			name: "inside date window",
			entry: model.Entry{
				IsActive:          true,
				PreferredDateFrom: ptr(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)),
				PreferredDateTo:   ptr(time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)),
			},
			want: true,
		},
		{
			name:  "after date window",
			entry: model.Entry{IsActive: true, PreferredDateTo: ptr(time.Date(2025, 9, 2, 0, 0, 0, 0, time.UTC))},
			want:  false,
		},
		{
			name: "afternoon only",
			entry: model.Entry{
				IsActive:           true,
				PreferredTimeStart: clock.NullTimeOfDay{Time: clock.MustParse("13:00"), Valid: true},
				PreferredTimeEnd:   clock.NullTimeOfDay{Time: clock.MustParse("18:00"), Valid: true},
			},
			want: true,
		},
		{
			name:  "mornings only",
			entry: model.Entry{IsActive: true, PreferredTimeEnd: clock.NullTimeOfDay{Time: clock.MustParse("12:00"), Valid: true}},
			want:  false,
		},
		{
			name:  "ends exactly at window end",
			entry: model.Entry{IsActive: true, PreferredTimeEnd: clock.NullTimeOfDay{Time: clock.MustParse("15:00"), Valid: true}},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Matches(opening))
		})
	}
}

func TestSortForFulfillment(t *testing.T) {
	at := func(day int) gModel.Metadata {
		return gModel.Metadata{CreatedAt: time.Date(2025, 8, day, 10, 0, 0, 0, time.UTC)}
	}

	entries := []model.Entry{
		{ID: "low-old", PriorityScore: 1, Metadata: at(1)},
		{ID: "high-new", PriorityScore: 5, Metadata: at(20)},
		{ID: "high-old", PriorityScore: 5, Metadata: at(2)},
		{ID: "mid", PriorityScore: 3, Metadata: at(1)},
	}

	model.SortForFulfillment(entries)

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.ID
	}

	assert.Equal(t, []string{"high-old", "high-new", "mid", "low-old"}, ids)
}
