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
	kafkaMocks "salon/infras/kafka/mocks"
	"salon/infras/otel/mocks"
	appointmentMocks "salon/internal/domains/appointment/mocks"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/service"
	availabilityMocks "salon/internal/domains/availability/mocks"
	availabilityService "salon/internal/domains/availability/service"
	catalogMocks "salon/internal/domains/catalog/mocks"
	catalogModel "salon/internal/domains/catalog/model"
	clientMocks "salon/internal/domains/client/mocks"
	clientModel "salon/internal/domains/client/model"
	clientDto "salon/internal/domains/client/model/dto"
	studioMocks "salon/internal/domains/studio/mocks"
	studioModel "salon/internal/domains/studio/model"
	cacheMocks "salon/shared/cache/mocks"
	"salon/shared/clock"
	gDto "salon/shared/dto"
	"salon/shared/failure"
)

const (
	studioID = "studio-1"
	actorID  = "user-1"
	topic    = "salon.appointment.events"
)

type fixture struct {
	svc          service.Appointment
	repo         *appointmentMocks.MockAppointment
	availability *availabilityMocks.MockAvailabilityService
	catalog      *catalogMocks.MockCatalogService
	studios      *studioMocks.MockStudioService
	clients      *clientMocks.MockClientService
	kafka        *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Kafka.Topic.AppointmentEvents = topic
	cfg.Scheduling.MaxRangeDays = 31
	cfg.Scheduling.MaxHistoryPageLength = 100

	f := fixture{
		repo:         appointmentMocks.NewMockAppointment(ctrl),
		availability: availabilityMocks.NewMockAvailabilityService(ctrl),
		catalog:      catalogMocks.NewMockCatalogService(ctrl),
		studios:      studioMocks.NewMockStudioService(ctrl),
		clients:      clientMocks.NewMockClientService(ctrl),
		kafka:        kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}
	f.svc = service.New(f.repo, f.availability, f.catalog, f.studios, f.clients, f.kafka, cfg, f.cache, mocks.NewOtel())

	return f
}

// expectCommitted covers what runs after every committed change.
func (f fixture) expectCommitted() {
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
	f.availability.EXPECT().InvalidateSlots(gomock.Any(), studioID)
	f.kafka.EXPECT().SendMessages(gomock.Any(), topic, gomock.Any()).Return(nil)
}

func haircut(duration int) catalogModel.BookableService {
	return catalogModel.BookableService{
		Service: catalogModel.Service{ID: "svc-1", StudioID: studioID, Name: "Haircut", DurationMinutes: duration, Price: 50000, IsActive: true},
		Buffer:  catalogModel.ServiceBuffer{ServiceID: "svc-1", SetupMinutes: 10, CleanupMinutes: 5},
	}
}

func stored(status model.Status) model.Appointment {
	return model.Appointment{
		ID:              "appt-1",
		StudioID:        studioID,
		TeamMemberID:    "tm-1",
		ServiceID:       "svc-1",
		LocationID:      "loc-1",
		AppointmentDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       clock.MustParse("09:00"),
		EndTime:         clock.MustParse("10:00"),
		Status:          status,
		PaymentStatus:   model.PaymentStatusUnpaid,
		TotalPrice:      50000,
		Version:         3,
	}
}

func bookRequest(start string) dto.BookRequest {
	return dto.BookRequest{
		TeamMemberID: "tm-1",
		ServiceID:    "svc-1",
		Date:         "2025-09-01",
		StartTime:    start,
	}
}

func TestAppointmentService_Book(t *testing.T) {
	t.Run("end time follows the service duration", func(t *testing.T) {
		f := newFixture(t)

		req := bookRequest("09:00")
		req.Client = &clientDto.CreateClientRequest{Name: "Ana"}

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(60), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1", IsActive: true}, nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, check availabilityService.SlotCheck) error {
				assert.Equal(t, 60, check.Duration)
				assert.Equal(t, 10, check.SetupMinutes)
				assert.Equal(t, 5, check.CleanupMinutes)
				assert.False(t, check.EnforceAdvance)

				return nil
			})

		var (
			history   model.History
			newClient *clientModel.Client
		)

		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Appointment, h model.History, c *clientModel.Client) error {
				history = h
				newClient = c

				return nil
			})
		f.expectCommitted()

		got, err := f.svc.Book(context.Background(), studioID, req, actorID)
		require.NoError(t, err)

		assert.Equal(t, "10:00", got.EndTime.String())
		assert.Equal(t, model.StatusScheduled, got.Status)
		assert.Equal(t, model.PaymentStatusUnpaid, got.PaymentStatus)
		assert.Equal(t, int64(50000), got.TotalPrice)
		assert.Equal(t, model.BookingSourceStaff, got.BookingSource)
		require.NotNil(t, got.ClientID)
		require.NotNil(t, newClient)
		assert.Equal(t, newClient.ID, *got.ClientID)
		assert.Equal(t, "Ana", newClient.Name)
		assert.Equal(t, studioID, newClient.StudioID)
		assert.Equal(t, actorID, newClient.CreatedBy)
		assert.Equal(t, actorID, got.CreatedBy)

		assert.Equal(t, got.ID, history.AppointmentID)
		assert.Equal(t, model.ChangeTypeCreated, history.ChangeType)
		assert.Equal(t, actorID, history.ChangedBy)
		assert.Equal(t, "09:00", history.NewValues["start_time"])
		assert.Equal(t, "10:00", history.NewValues["end_time"])
	})

	t.Run("end time determinism", func(t *testing.T) {
		tests := []struct {
			start    string
			duration int
			want     string
		}{
			{start: "09:15", duration: 45, want: "10:00"},
			{start: "13:00", duration: 90, want: "14:30"},
			{start: "23:00", duration: 60, want: "24:00"},
		}

		for _, tt := range tests {
			f := newFixture(t)

			f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(tt.duration), nil)
			f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
			f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)
			f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).Return(nil)
			f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil)
			f.expectCommitted()

			got, err := f.svc.Book(context.Background(), studioID, bookRequest(tt.start), actorID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.EndTime.String())
			assert.Nil(t, got.ClientID)
		}
	})

	t.Run("crossing midnight is rejected", func(t *testing.T) {
		f := newFixture(t)

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(60), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)

		_, err := f.svc.Book(context.Background(), studioID, bookRequest("23:30"), actorID)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("slot taken", func(t *testing.T) {
		f := newFixture(t)

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(30), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).Return(failure.SlotUnavailableError)

		_, err := f.svc.Book(context.Background(), studioID, bookRequest("09:30"), actorID)
		require.Error(t, err)
		assert.ErrorIs(t, err, failure.SlotUnavailableError)
		assert.True(t, failure.IsConflict(err))
	})

	t.Run("slot lost to a concurrent booking", func(t *testing.T) {
		f := newFixture(t)

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(30), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).Return(failure.SlotUnavailableError)

		_, err := f.svc.Book(context.Background(), studioID, bookRequest("09:30"), actorID)
		assert.ErrorIs(t, err, failure.SlotUnavailableError)
	})

	t.Run("inline client is only stored with the appointment", func(t *testing.T) {
		f := newFixture(t)

		req := bookRequest("09:30")
		req.Client = &clientDto.CreateClientRequest{Name: "Walk-in"}

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(30), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).Return(nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Not(gomock.Nil())).Return(failure.SlotUnavailableError)

		// the client service is never asked to write
		_, err := f.svc.Book(context.Background(), studioID, req, actorID)
		assert.ErrorIs(t, err, failure.SlotUnavailableError)
	})

	t.Run("online bookings respect the advance cutoff", func(t *testing.T) {
		f := newFixture(t)

		req := bookRequest("09:00")
		req.BookingSource = string(model.BookingSourceOnline)

		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(30), nil)
		f.studios.EXPECT().GetTeamMember(gomock.Any(), studioID, "tm-1").Return(studioModel.TeamMember{ID: "tm-1", IsBookable: true}, nil)
		f.studios.EXPECT().ResolveLocation(gomock.Any(), studioID, "").Return(studioModel.Location{ID: "loc-1"}, nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, check availabilityService.SlotCheck) error {
				assert.True(t, check.EnforceAdvance)

				return failure.BadRequestFromString("appointment starts too soon to be booked")
			})

		_, err := f.svc.Book(context.Background(), studioID, req, actorID)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestAppointmentService_Reschedule(t *testing.T) {
	t.Run("moves in place and records old and new times", func(t *testing.T) {
		f := newFixture(t)

		current := stored(model.StatusConfirmed)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(current, nil)
		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(60), nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, check availabilityService.SlotCheck) error {
				assert.Equal(t, "appt-1", check.ExcludeAppointmentID)
				assert.Equal(t, "14:00", check.Start.String())

				return nil
			})

		var history model.History

		f.repo.EXPECT().Reschedule(gomock.Any(), current, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Appointment, next model.Appointment, h model.History) error {
				assert.Equal(t, "2025-09-02", clock.FormatDate(next.AppointmentDate))
				history = h

				return nil
			})
		f.expectCommitted()

		got, err := f.svc.Reschedule(context.Background(), studioID, "appt-1", dto.RescheduleRequest{
			Date: "2025-09-02", StartTime: "14:00",
		}, actorID)
		require.NoError(t, err)

		assert.Equal(t, model.StatusRescheduled, got.Status)
		assert.Equal(t, "appt-1", got.ID)
		assert.Equal(t, "15:00", got.EndTime.String())
		assert.Equal(t, 4, got.Version)

		assert.Equal(t, model.ChangeTypeRescheduled, history.ChangeType)
		assert.Equal(t, "09:00", history.OldValues["start_time"])
		assert.Equal(t, "14:00", history.NewValues["start_time"])
		assert.Equal(t, "2025-09-01", history.OldValues["appointment_date"])
		assert.Equal(t, "2025-09-02", history.NewValues["appointment_date"])
		assert.Equal(t, actorID, history.ChangedBy)
	})

	t.Run("terminal appointment cannot move", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusCompleted), nil)

		_, err := f.svc.Reschedule(context.Background(), studioID, "appt-1", dto.RescheduleRequest{
			Date: "2025-09-02", StartTime: "14:00",
		}, actorID)
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("new time is taken", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusScheduled), nil)
		f.catalog.EXPECT().GetService(gomock.Any(), studioID, "svc-1").Return(haircut(60), nil)
		f.availability.EXPECT().ValidateSlot(gomock.Any(), studioID, gomock.Any()).Return(failure.SlotUnavailableError)

		_, err := f.svc.Reschedule(context.Background(), studioID, "appt-1", dto.RescheduleRequest{
			Date: "2025-09-02", StartTime: "14:00",
		}, actorID)
		assert.ErrorIs(t, err, failure.SlotUnavailableError)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(model.Appointment{}, nil)

		_, err := f.svc.Reschedule(context.Background(), studioID, "appt-1", dto.RescheduleRequest{
			Date: "2025-09-02", StartTime: "14:00",
		}, actorID)
		assert.True(t, failure.IsNotFound(err))
	})
}

func TestAppointmentService_Cancel(t *testing.T) {
	t.Run("cancels a scheduled appointment", func(t *testing.T) {
		f := newFixture(t)

		current := stored(model.StatusScheduled)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(current, nil)
		f.repo.EXPECT().Transition(gomock.Any(), current, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ model.Appointment, fields map[string]any, h model.History) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
				assert.Equal(t, "client called", fields[model.FieldCancellationReason])
				assert.Contains(t, fields, model.FieldCancelledAt)
				assert.Equal(t, model.ChangeTypeCancelled, h.ChangeType)
				assert.Equal(t, actorID, h.ChangedBy)

				return nil
			})
		f.expectCommitted()

		got, err := f.svc.Cancel(context.Background(), studioID, "appt-1", dto.CancelRequest{Reason: "client called"}, actorID)
		require.NoError(t, err)
		assert.Equal(t, model.StatusCancelled, got.Status)
		assert.NotNil(t, got.CancelledAt)
	})

	t.Run("cancelling twice is a no-op", func(t *testing.T) {
		f := newFixture(t)

		current := stored(model.StatusCancelled)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(current, nil)

		got, err := f.svc.Cancel(context.Background(), studioID, "appt-1", dto.CancelRequest{}, actorID)
		require.NoError(t, err)
		assert.Equal(t, current, got)
	})

	t.Run("in progress appointment cannot be cancelled", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusInProgress), nil)

		_, err := f.svc.Cancel(context.Background(), studioID, "appt-1", dto.CancelRequest{}, actorID)
		require.Error(t, err)
		assert.True(t, failure.IsBadRequest(err))
	})
}

func TestAppointmentService_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    model.Status
		call    func(service.Appointment) (model.Appointment, error)
		want    model.Status
		stamped string
		wantErr func(error) bool
	}{
		{
			name: "confirm",
			from: model.StatusScheduled,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.Confirm(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			want: model.StatusConfirmed,
		},
		{
			name: "arrive",
			from: model.StatusConfirmed,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.Arrive(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			want:    model.StatusArrived,
			stamped: model.FieldArrivedAt,
		},
		{
			name: "start",
			from: model.StatusArrived,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.Start(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			want:    model.StatusInProgress,
			stamped: model.FieldStartedAt,
		},
		{
			name: "complete",
			from: model.StatusInProgress,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.Complete(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			want:    model.StatusCompleted,
			stamped: model.FieldCompletedAt,
		},
		{
			name: "no show",
			from: model.StatusConfirmed,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.NoShow(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			want: model.StatusNoShow,
		},
		{
			name: "complete before start",
			from: model.StatusConfirmed,
			call: func(s service.Appointment) (model.Appointment, error) {
				return s.Complete(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
			},
			wantErr: failure.IsBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(tt.from), nil)

			if tt.wantErr == nil {
				f.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ model.Appointment, fields map[string]any, h model.History) error {
						assert.Equal(t, tt.want, fields[model.FieldStatus])
						assert.Equal(t, model.ChangeTypeStatusChanged, h.ChangeType)
						assert.Equal(t, tt.from, h.OldValues["status"])

						if tt.stamped != "" {
							assert.Contains(t, fields, tt.stamped)
						}

						return nil
					})
				f.expectCommitted()
			}

			got, err := tt.call(f.svc)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestAppointmentService_ConcurrentChange(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusScheduled), nil)
	f.repo.EXPECT().Transition(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(failure.Conflict("appointment was changed by someone else, reload and try again"))

	_, err := f.svc.Confirm(context.Background(), studioID, "appt-1", dto.TransitionRequest{}, actorID)
	assert.True(t, failure.IsConflict(err))
}

func TestAppointmentService_RecordPayment(t *testing.T) {
	tests := []struct {
		name    string
		status  model.Status
		paid    int64
		amount  int64
		want    model.PaymentStatus
		wantErr bool
	}{
		{name: "partial", status: model.StatusConfirmed, amount: 20000, want: model.PaymentStatusPartial},
		{name: "settles the balance", status: model.StatusCompleted, paid: 20000, amount: 30000, want: model.PaymentStatusPaid},
		{name: "overpayment", status: model.StatusCompleted, paid: 20000, amount: 40000, wantErr: true},
		{name: "cancelled appointment", status: model.StatusCancelled, amount: 1000, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			current := stored(tt.status)
			current.PaidAmount = tt.paid

			f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(current, nil)

			if !tt.wantErr {
				f.repo.EXPECT().UpdateFields(gomock.Any(), current, gomock.Any(), gomock.Not(gomock.Nil())).Return(nil)
				f.expectCommitted()
			}

			got, err := f.svc.RecordPayment(context.Background(), studioID, "appt-1", dto.PaymentRequest{Amount: tt.amount}, actorID)
			if tt.wantErr {
				assert.True(t, failure.IsBadRequest(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got.PaymentStatus)
			assert.Equal(t, tt.paid+tt.amount, got.PaidAmount)
		})
	}
}

func TestAppointmentService_MarkReminderSent(t *testing.T) {
	f := newFixture(t)

	current := stored(model.StatusConfirmed)

	f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(current, nil)
	f.repo.EXPECT().UpdateFields(gomock.Any(), current, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ model.Appointment, fields map[string]any, _ *model.History) error {
			assert.Len(t, fields, 1)
			assert.Contains(t, fields, model.FieldReminderSentAt)

			return nil
		})
	f.cache.EXPECT().Delete(gomock.Any(), "appointment:get:studio-1:appt-1").Return(nil)

	require.NoError(t, f.svc.MarkReminderSent(context.Background(), studioID, "appt-1"))
}

func TestAppointmentService_Get(t *testing.T) {
	t.Run("cache miss loads and caches", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), "appointment:get:studio-1:appt-1", gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusScheduled), nil)
		f.cache.EXPECT().Save(gomock.Any(), "appointment:get:studio-1:appt-1", gomock.Any(), 60).Return(nil)

		got, err := f.svc.Get(context.Background(), studioID, "appt-1")
		require.NoError(t, err)
		assert.Equal(t, "appt-1", got.ID)
	})

	t.Run("repository failure is not a domain error", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(model.Appointment{}, errors.New("connection reset"))

		_, err := f.svc.Get(context.Background(), studioID, "appt-1")
		require.Error(t, err)
		assert.Equal(t, 500, failure.GetCode(err))
	})
}

func TestAppointmentService_List(t *testing.T) {
	t.Run("unknown status", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.List(context.Background(), studioID, dto.ListQuery{From: "2025-09-01", To: "2025-09-07", Status: "scheduled,lost"})
		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("filters by range and status", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().FindByRange(gomock.Any(), studioID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, filter model.Filter) ([]model.Appointment, error) {
				assert.Equal(t, []model.Status{model.StatusScheduled, model.StatusConfirmed}, filter.Statuses)
				assert.Equal(t, "2025-09-07", clock.FormatDate(filter.To))

				return []model.Appointment{stored(model.StatusScheduled)}, nil
			})

		got, err := f.svc.List(context.Background(), studioID, dto.ListQuery{From: "2025-09-01", To: "2025-09-07", Status: "scheduled, confirmed"})
		require.NoError(t, err)
		assert.Len(t, got, 1)
	})
}

func TestAppointmentService_History(t *testing.T) {
	rows := []model.History{{ID: "h-1", AppointmentID: "appt-1", ChangeType: model.ChangeTypeCreated}}

	t.Run("defaults to the first full page", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusScheduled), nil)
		f.repo.EXPECT().History(gomock.Any(), "appt-1", gDto.QueryParams{Page: 1, Limit: 100}).Return(rows, nil)

		got, err := f.svc.History(context.Background(), studioID, "appt-1", gDto.QueryParams{})
		require.NoError(t, err)
		assert.Equal(t, rows, got)
	})

	t.Run("caps the page size", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), studioID, "appt-1").Return(stored(model.StatusScheduled), nil)
		f.repo.EXPECT().History(gomock.Any(), "appt-1", gDto.QueryParams{Page: 3, Limit: 100}).Return(nil, nil)

		got, err := f.svc.History(context.Background(), studioID, "appt-1", gDto.QueryParams{Page: 3, Limit: 5000})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
