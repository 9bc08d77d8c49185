package appointment_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"salon/infras/otel/mocks"
	appointmentMocks "salon/internal/domains/appointment/mocks"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/handlers/appointment"
	"salon/shared/clock"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
)

const (
	studioID = "studio-1"
	userID   = "user-1"

	memberID  = "7d7e3c1e-3f55-4bb1-9a0e-2f6c0c1a8d11"
	serviceID = "4c1a4f5e-51b5-4f08-9df3-0d9b4b3c2a22"
	clientID  = "a2b8d0f4-2d31-4f54-bd7f-6d2b7f6e9c33"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newRouter(t *testing.T) (http.Handler, *appointmentMocks.MockAppointmentService) {
	t.Helper()

	svc := appointmentMocks.NewMockAppointmentService(gomock.NewController(t))
	handler := appointment.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, path, body string, authenticated bool) (*httptest.ResponseRecorder, envelope) {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if authenticated {
		ctx := context.WithValue(request.Context(), constant.ContextKeyStudioID, studioID)
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)
		request = request.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	var env envelope
	_ = json.Unmarshal(recorder.Body.Bytes(), &env)

	return recorder, env
}

func booked() model.Appointment {
	client := clientID

	return model.Appointment{
		ID:              "appt-1",
		StudioID:        studioID,
		ClientID:        &client,
		TeamMemberID:    memberID,
		ServiceID:       serviceID,
		LocationID:      "loc-1",
		AppointmentDate: time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       clock.MustParse("09:00"),
		EndTime:         clock.MustParse("10:00"),
		Status:          model.StatusScheduled,
		PaymentStatus:   model.PaymentStatusUnpaid,
		BookingSource:   model.BookingSourceStaff,
		Version:         1,
	}
}

func TestHandler_Book(t *testing.T) {
	body := `{"client_id":"` + clientID + `","team_member_id":"` + memberID + `","service_id":"` + serviceID +
		`","date":"2025-09-01","start_time":"09:00"}`

	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Book(gomock.Any(), studioID, gomock.Any(), userID).
			DoAndReturn(func(_ context.Context, _ string, req dto.BookRequest, _ string) (model.Appointment, error) {
				assert.Equal(t, "09:00", req.StartTime)
				assert.Equal(t, "2025-09-01", req.Date)

				return booked(), nil
			})

		recorder, env := serve(router, http.MethodPost, "/appointments", body, true)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var res dto.AppointmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "appt-1", res.ID)
		assert.Equal(t, "09:00", res.StartTime)
		assert.Equal(t, "10:00", res.EndTime)
		assert.Equal(t, "scheduled", res.Status)
	})

	t.Run("slot taken", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Book(gomock.Any(), studioID, gomock.Any(), userID).Return(model.Appointment{}, failure.SlotUnavailableError)

		recorder, env := serve(router, http.MethodPost, "/appointments", body, true)
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Equal(t, failure.SlotUnavailableError.Message, env.Error)
	})

	t.Run("invalid start time", func(t *testing.T) {
		router, _ := newRouter(t)

		invalid := strings.Replace(body, "09:00", "9am", 1)

		recorder, _ := serve(router, http.MethodPost, "/appointments", invalid, true)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, _ := serve(router, http.MethodPost, "/appointments", body, false)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestHandler_Transitions(t *testing.T) {
	t.Run("confirm without body", func(t *testing.T) {
		router, svc := newRouter(t)

		confirmed := booked()
		confirmed.Status = model.StatusConfirmed

		svc.EXPECT().Confirm(gomock.Any(), studioID, "appt-1", dto.TransitionRequest{}, userID).Return(confirmed, nil)

		recorder, env := serve(router, http.MethodPost, "/appointments/appt-1/confirm", "", true)
		require.Equal(t, http.StatusOK, recorder.Code)

		var res dto.AppointmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "confirmed", res.Status)
	})

	t.Run("cancel with reason", func(t *testing.T) {
		router, svc := newRouter(t)

		cancelled := booked()
		cancelled.Status = model.StatusCancelled
		cancelled.CancellationReason = "client ill"

		svc.EXPECT().Cancel(gomock.Any(), studioID, "appt-1", dto.CancelRequest{Reason: "client ill"}, userID).Return(cancelled, nil)

		recorder, env := serve(router, http.MethodPost, "/appointments/appt-1/cancel", `{"reason":"client ill"}`, true)
		require.Equal(t, http.StatusOK, recorder.Code)

		var res dto.AppointmentResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, "client ill", res.CancellationReason)
	})

	t.Run("invalid transition", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Start(gomock.Any(), studioID, "appt-1", gomock.Any(), userID).
			Return(model.Appointment{}, failure.BadRequestFromString("cannot start an appointment that is scheduled"))

		recorder, _ := serve(router, http.MethodPost, "/appointments/appt-1/start", "", true)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetAppointments(t *testing.T) {
	t.Run("listed", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().List(gomock.Any(), studioID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, query dto.ListQuery) ([]model.Appointment, error) {
				assert.Equal(t, "2025-09-01", query.From)
				assert.Equal(t, "2025-09-07", query.To)
				assert.Equal(t, []model.Status{model.StatusScheduled, model.StatusConfirmed}, query.Statuses())

				return []model.Appointment{booked()}, nil
			})

		recorder, env := serve(router, http.MethodGet, "/appointments?from=2025-09-01&to=2025-09-07&status=scheduled,confirmed", "", true)
		require.Equal(t, http.StatusOK, recorder.Code)

		var res dto.GetAppointmentsResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Len(t, res.Appointments, 1)
	})

	t.Run("missing range", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, _ := serve(router, http.MethodGet, "/appointments", "", true)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetHistory(t *testing.T) {
	router, svc := newRouter(t)

	rows := []model.History{
		{ID: "h-1", AppointmentID: "appt-1", ChangeType: model.ChangeTypeCreated, ChangedBy: userID},
		{ID: "h-2", AppointmentID: "appt-1", ChangeType: model.ChangeTypeStatusChanged, ChangedBy: userID},
	}

	svc.EXPECT().History(gomock.Any(), studioID, "appt-1", gDto.QueryParams{Page: 2, Limit: 10}).Return(rows, nil)

	recorder, env := serve(router, http.MethodGet, "/appointments/appt-1/history?page=2&limit=10", "", true)
	require.Equal(t, http.StatusOK, recorder.Code)

	var res dto.GetHistoryResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	require.Len(t, res.History, 2)
	assert.Equal(t, "status_changed", res.History[1].ChangeType)
}

func TestHandler_MarkReminderSent(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().MarkReminderSent(gomock.Any(), studioID, "appt-1").Return(nil)

	request := httptest.NewRequest(http.MethodPost, "/appointments/appt-1/reminder-sent", nil)
	ctx := context.WithValue(request.Context(), constant.ContextKeyStudioID, studioID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, constant.ActorSystem)
	ctx = context.WithValue(ctx, constant.ContextKeyInternal, true)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request.WithContext(ctx))

	var env envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Reminder marked as sent", env.Message)
}

func TestHandler_NotifierRoutesRejectBearerUsers(t *testing.T) {
	for _, path := range []string{"/appointments/appt-1/confirmation-sent", "/appointments/appt-1/reminder-sent"} {
		t.Run(path, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder, _ := serve(router, http.MethodPost, path, "", true)
			assert.Equal(t, http.StatusForbidden, recorder.Code)
		})
	}
}
