package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/config"
	"salon/infras/otel/mocks"
	appointmentMocks "salon/internal/domains/appointment/mocks"
	appointmentModel "salon/internal/domains/appointment/model"
	availabilityMocks "salon/internal/domains/availability/mocks"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/model/dto"
	"salon/internal/domains/availability/service"
	catalogMocks "salon/internal/domains/catalog/mocks"
	catalogModel "salon/internal/domains/catalog/model"
	studioMocks "salon/internal/domains/studio/mocks"
	studioModel "salon/internal/domains/studio/model"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/clock"
	"salon/shared/failure"
)

type fixture struct {
	svc          service.Availability
	repo         *availabilityMocks.MockAvailability
	appointments *appointmentMocks.MockAppointment
	studios      *studioMocks.MockStudioService
	catalog      *catalogMocks.MockCatalogService
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Scheduling.DefaultStepMinutes = 15
	cfg.Scheduling.MaxRangeDays = 31
	cfg.Scheduling.SlotCacheTTLSeconds = 300

	f := fixture{
		repo:         availabilityMocks.NewMockAvailability(ctrl),
		appointments: appointmentMocks.NewMockAppointment(ctrl),
		studios:      studioMocks.NewMockStudioService(ctrl),
		catalog:      catalogMocks.NewMockCatalogService(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.appointments, f.studios, f.catalog, cfg, f.cache, mocks.NewOtel())

	return f
}

// futureDate is far enough ahead that the minimum advance cutoff never hides a slot.
func futureDate() time.Time {
	return clock.DateOf(time.Now().AddDate(0, 0, 14))
}

func workingHours(date time.Time, start, end string) model.AvailabilityRule {
	return model.AvailabilityRule{
		ID:          "rule-1",
		StudioID:    "studio-1",
		RuleType:    model.RuleTypeWorkingHours,
		DayOfWeek:   int(date.Weekday()),
		StartTime:   clock.MustParse(start),
		EndTime:     clock.MustParse(end),
		IsAvailable: true,
	}
}

func booked(id string, date time.Time, start, end string) appointmentModel.Appointment {
	return appointmentModel.Appointment{
		ID:              id,
		StudioID:        "studio-1",
		TeamMemberID:    "tm-1",
		LocationID:      "loc-1",
		AppointmentDate: date,
		StartTime:       clock.MustParse(start),
		EndTime:         clock.MustParse(end),
		Status:          appointmentModel.StatusScheduled,
	}
}

func TestAvailabilityService_GenerateSlots(t *testing.T) {
	date := futureDate()
	query := dto.SlotQuery{
		ServiceID:    "svc-1",
		TeamMemberID: "tm-1",
		StartDate:    clock.FormatDate(date),
		EndDate:      clock.FormatDate(date),
		StepMinutes:  60,
	}

	t.Run("generates around existing appointments and caches the result", func(t *testing.T) {
		f := newFixture(t)

		f.studios.EXPECT().GetStudio(gomock.Any(), "studio-1").Return(studioModel.Studio{ID: "studio-1", Timezone: "UTC"}, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.catalog.EXPECT().GetService(gomock.Any(), "studio-1", "svc-1").Return(catalogModel.BookableService{
			Service: catalogModel.Service{ID: "svc-1", DurationMinutes: 60, IsActive: true},
		}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), "studio-1", "").Return(studioModel.Location{ID: "loc-1"}, nil)
		f.studios.EXPECT().ResolveTeamMembers(gomock.Any(), "studio-1", "tm-1").Return([]studioModel.TeamMember{{ID: "tm-1"}}, nil)
		f.appointments.EXPECT().FindByRange(gomock.Any(), "studio-1", gomock.Any()).
			Return([]appointmentModel.Appointment{booked("appt-1", date, "10:00", "11:00")}, nil)
		f.repo.EXPECT().FindRules(gomock.Any(), "studio-1", model.Scope{TeamMemberID: "tm-1", LocationID: "loc-1", ServiceID: "svc-1"}).
			Return([]model.AvailabilityRule{workingHours(date, "09:00", "12:00")}, nil)
		f.repo.EXPECT().FindBlockedTimes(gomock.Any(), "studio-1", date, date, gomock.Any()).Return(nil, nil)
		f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), 300).Return(nil)

		got, err := f.svc.GenerateSlots(context.Background(), "studio-1", query)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "09:00", got[0].Start.String())
		assert.Equal(t, "11:00", got[1].Start.String())

		for _, slot := range got {
			assert.True(t, slot.Available)
			assert.Equal(t, "tm-1", slot.TeamMemberID)
			assert.Equal(t, "loc-1", slot.LocationID)
		}
	})

	t.Run("cached slots are filtered by the advance cutoff", func(t *testing.T) {
		f := newFixture(t)

		past := clock.DateOf(time.Now().AddDate(0, 0, -1))
		cached := []model.Slot{
			{Date: past, TeamMemberID: "tm-1", Start: clock.MustParse("09:00"), End: clock.MustParse("10:00"), Available: true},
			{Date: date, TeamMemberID: "tm-1", Start: clock.MustParse("09:00"), End: clock.MustParse("10:00"), Available: true},
		}

		f.studios.EXPECT().GetStudio(gomock.Any(), "studio-1").Return(studioModel.Studio{ID: "studio-1", Timezone: "UTC"}, nil)
		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				*value.(*[]model.Slot) = cached

				return nil
			})

		got, err := f.svc.GenerateSlots(context.Background(), "studio-1", query)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.True(t, got[0].Date.Equal(date))
	})

	t.Run("range too long", func(t *testing.T) {
		f := newFixture(t)

		q := query
		q.EndDate = clock.FormatDate(date.AddDate(0, 0, 40))

		_, err := f.svc.GenerateSlots(context.Background(), "studio-1", q)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("reversed range", func(t *testing.T) {
		f := newFixture(t)

		q := query
		q.EndDate = clock.FormatDate(date.AddDate(0, 0, -1))

		_, err := f.svc.GenerateSlots(context.Background(), "studio-1", q)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestAvailabilityService_ValidateSlot(t *testing.T) {
	date := futureDate()
	rules := []model.AvailabilityRule{workingHours(date, "09:00", "17:00")}

	check := func(start string, duration int) service.SlotCheck {
		return service.SlotCheck{
			TeamMemberID: "tm-1",
			LocationID:   "loc-1",
			ServiceID:    "svc-1",
			Date:         date,
			Start:        clock.MustParse(start),
			Duration:     duration,
		}
	}

	tests := []struct {
		name     string
		check    service.SlotCheck
		existing []appointmentModel.Appointment
		loads    bool
		busy     bool
		wantErr  func(error) bool
	}{
		{
			name:  "free slot",
			check: check("10:00", 60),
			loads: true,
			busy:  true,
		},
		{
			name:     "overlaps an existing appointment",
			check:    check("10:30", 60),
			existing: []appointmentModel.Appointment{booked("appt-1", date, "10:00", "11:00")},
			loads:    true,
			busy:     true,
			wantErr:  func(err error) bool { return errors.Is(err, failure.SlotUnavailableError) },
		},
		{
			name: "overlap with itself is ignored",
			check: func() service.SlotCheck {
				c := check("10:30", 60)
				c.ExcludeAppointmentID = "appt-1"

				return c
			}(),
			existing: []appointmentModel.Appointment{booked("appt-1", date, "10:00", "11:00")},
			loads:    true,
			busy:     true,
		},
		{
			name:    "outside working hours",
			check:   check("16:30", 60),
			loads:   true,
			wantErr: failure.IsConflict,
		},
		{
			name:    "crosses midnight",
			check:   check("23:30", 60),
			wantErr: failure.IsBadRequest,
		},
		{
			name: "setup before midnight",
			check: func() service.SlotCheck {
				c := check("00:10", 30)
				c.SetupMinutes = 15

				return c
			}(),
			wantErr: failure.IsBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.loads {
				f.repo.EXPECT().FindRules(gomock.Any(), "studio-1", gomock.Any()).Return(rules, nil)
				f.repo.EXPECT().FindBlockedTimes(gomock.Any(), "studio-1", date, date, gomock.Any()).Return(nil, nil)
			}

			if tt.busy {
				f.appointments.EXPECT().FindByRange(gomock.Any(), "studio-1", gomock.Any()).Return(tt.existing, nil)
			}

			err := f.svc.ValidateSlot(context.Background(), "studio-1", tt.check)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), err.Error())

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAvailabilityService_ValidateSlot_TooSoon(t *testing.T) {
	f := newFixture(t)

	yesterday := clock.DateOf(time.Now().AddDate(0, 0, -1))

	f.studios.EXPECT().GetStudio(gomock.Any(), "studio-1").Return(studioModel.Studio{ID: "studio-1", Timezone: "UTC"}, nil)

	err := f.svc.ValidateSlot(context.Background(), "studio-1", service.SlotCheck{
		TeamMemberID:   "tm-1",
		LocationID:     "loc-1",
		Date:           yesterday,
		Start:          clock.MustParse("10:00"),
		Duration:       30,
		EnforceAdvance: true,
	})
	assert.True(t, failure.IsBadRequest(err))
}

func TestAvailabilityService_HasConflict(t *testing.T) {
	f := newFixture(t)
	date := futureDate()

	f.catalog.EXPECT().GetService(gomock.Any(), "studio-1", "svc-1").Return(catalogModel.BookableService{
		Service: catalogModel.Service{ID: "svc-1", DurationMinutes: 30},
		Buffer:  catalogModel.ServiceBuffer{ServiceID: "svc-1", CleanupMinutes: 15},
	}, nil)
	f.appointments.EXPECT().FindByRange(gomock.Any(), "studio-1", gomock.Any()).
		Return([]appointmentModel.Appointment{booked("appt-1", date, "11:00", "12:00")}, nil)

	got, err := f.svc.HasConflict(context.Background(), "studio-1", dto.ConflictQuery{
		TeamMemberID: "tm-1",
		LocationID:   "loc-1",
		ServiceID:    "svc-1",
		Date:         clock.FormatDate(date),
		StartTime:    "10:30",
		EndTime:      "11:00",
	})
	require.NoError(t, err)
	assert.True(t, got.Conflict)
	assert.Equal(t, "appt-1", got.ConflictingAppointmentID)
}

func TestAvailabilityService_CreateBlockedTime(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateBlockedTimeRequest
		insert  bool
		wantErr bool
	}{
		{
			name: "all day vacation",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-01", EndDate: "2025-09-05", IsAllDay: true, BlockType: "vacation",
			},
			insert: true,
		},
		{
			name: "reversed dates",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-05", EndDate: "2025-09-01", IsAllDay: true, BlockType: "vacation",
			},
			wantErr: true,
		},
		{
			name: "missing times",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-01", EndDate: "2025-09-01", BlockType: "personal",
			},
			wantErr: true,
		},
		{
			name: "same day end before start",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-01", EndDate: "2025-09-01", StartTime: "14:00", EndTime: "13:00", BlockType: "personal",
			},
			wantErr: true,
		},
		{
			name: "daily block spanning two days",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-01", EndDate: "2025-09-02", IsAllDay: true, BlockType: "training", Recurrence: "daily",
			},
			wantErr: true,
		},
		{
			name: "weekly lunch",
			req: dto.CreateBlockedTimeRequest{
				StartDate: "2025-09-01", EndDate: "2025-09-01", StartTime: "12:00", EndTime: "13:00",
				BlockType: "personal", Recurrence: "weekly", RecurrenceUntil: "2025-12-31",
			},
			insert: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.insert {
				f.repo.EXPECT().InsertBlockedTime(gomock.Any(), gomock.Any()).Return(nil)
				f.cache.EXPECT().Clear(gomock.Any(), "availability:slots:studio-1:*").Return(nil)
			}

			got, err := f.svc.CreateBlockedTime(context.Background(), "studio-1", tt.req, "user-1")
			if tt.wantErr {
				assert.True(t, failure.IsBadRequest(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, got.ID)
			assert.Equal(t, "user-1", got.CreatedBy)
		})
	}
}

func TestAvailabilityService_CreateRule(t *testing.T) {
	day, available := 1, true

	t.Run("reversed times", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateRule(context.Background(), "studio-1", dto.CreateRuleRequest{
			RuleType: "working_hours", DayOfWeek: &day, StartTime: "17:00", EndTime: "09:00", IsAvailable: &available,
		}, "user-1")
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("created and slots invalidated", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().InsertRule(gomock.Any(), gomock.Any()).Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), "availability:slots:studio-1:*").Return(nil)

		got, err := f.svc.CreateRule(context.Background(), "studio-1", dto.CreateRuleRequest{
			TeamMemberID: "7c6f7a36-2d8d-4a55-9d43-3f5c9b0d1e21",
			RuleType:     "working_hours", DayOfWeek: &day, StartTime: "09:00", EndTime: "24:00", IsAvailable: &available,
		}, "user-1")
		require.NoError(t, err)
		assert.Equal(t, model.LevelTeamMember, got.Level())
		assert.Equal(t, clock.EndOfDay, got.EndTime)
	})
}

func TestAvailabilityService_DeleteRule(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetRule(gomock.Any(), "studio-1", "rule-1").Return(model.AvailabilityRule{}, nil)

		err := f.svc.DeleteRule(context.Background(), "studio-1", "rule-1")
		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetRule(gomock.Any(), "studio-1", "rule-1").Return(model.AvailabilityRule{ID: "rule-1"}, nil)
		f.repo.EXPECT().DeleteRule(gomock.Any(), "studio-1", "rule-1").Return(nil)
		f.cache.EXPECT().Clear(gomock.Any(), "availability:slots:studio-1:*").Return(nil)

		require.NoError(t, f.svc.DeleteRule(context.Background(), "studio-1", "rule-1"))
	})
}
