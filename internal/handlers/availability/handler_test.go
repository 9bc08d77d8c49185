package availability_test

import (
	"context"
	"encoding/json"
	"errors"
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
	availabilityMocks "salon/internal/domains/availability/mocks"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/model/dto"
	"salon/internal/handlers/availability"
	"salon/shared/clock"
	"salon/shared/constant"
	"salon/shared/failure"
)

const (
	studioID = "studio-1"
	userID   = "user-1"

	memberID  = "7d7e3c1e-3f55-4bb1-9a0e-2f6c0c1a8d11"
	serviceID = "4c1a4f5e-51b5-4f08-9df3-0d9b4b3c2a22"
	ruleID    = "9b0e6d4a-1c2f-4e3b-8a7d-5f6e7d8c9b44"
)

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func newRouter(t *testing.T) (http.Handler, *availabilityMocks.MockAvailabilityService) {
	t.Helper()

	svc := availabilityMocks.NewMockAvailabilityService(gomock.NewController(t))
	handler := availability.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	request := httptest.NewRequest(method, path, strings.NewReader(body))
	request.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	ctx := context.WithValue(request.Context(), constant.ContextKeyStudioID, studioID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, userID)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request.WithContext(ctx))

	var env envelope
	_ = json.Unmarshal(recorder.Body.Bytes(), &env)

	return recorder, env
}

func TestHandler_GetSlots(t *testing.T) {
	t.Run("end date defaults to the start date", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GenerateSlots(gomock.Any(), studioID, dto.SlotQuery{
			ServiceID:   serviceID,
			StartDate:   "2025-09-01",
			EndDate:     "2025-09-01",
			StepMinutes: 15,
		}).Return([]model.Slot{{
			Date:         time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
			TeamMemberID: memberID,
			LocationID:   "loc-1",
			ServiceID:    serviceID,
			Start:        clock.MustParse("09:00"),
			End:          clock.MustParse("09:45"),
			Available:    true,
		}}, nil)

		recorder, env := serve(router, http.MethodGet,
			"/availability/slots?service_id="+serviceID+"&start_date=2025-09-01&step_minutes=15", "")
		require.Equal(t, http.StatusOK, recorder.Code)

		var res dto.GetSlotsResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		require.Len(t, res.Slots, 1)
		assert.Equal(t, "2025-09-01", res.Slots[0].Date)
		assert.Equal(t, "09:00", res.Slots[0].Start)
		assert.Equal(t, "09:45", res.Slots[0].End)
	})

	t.Run("service is required", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, env := serve(router, http.MethodGet, "/availability/slots?start_date=2025-09-01", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "service_id is required", env.Error)
	})

	t.Run("step below the minimum", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, _ := serve(router, http.MethodGet,
			"/availability/slots?service_id="+serviceID+"&start_date=2025-09-01&step_minutes=1", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("unknown service", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GenerateSlots(gomock.Any(), studioID, gomock.Any()).Return(nil, failure.NotFound("service"))

		recorder, _ := serve(router, http.MethodGet, "/availability/slots?service_id="+serviceID+"&start_date=2025-09-01", "")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("storage failure hides the cause", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GenerateSlots(gomock.Any(), studioID, gomock.Any()).Return(nil, errors.New("pq: connection reset"))

		recorder, env := serve(router, http.MethodGet, "/availability/slots?service_id="+serviceID+"&start_date=2025-09-01", "")
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, env.Error, "pq")
	})
}

func TestHandler_GetOpenIntervals(t *testing.T) {
	router, svc := newRouter(t)

	morning, err := clock.NewInterval(clock.MustParse("09:00"), clock.MustParse("12:00"))
	require.NoError(t, err)

	svc.EXPECT().
		OpenIntervals(gomock.Any(), studioID, model.Scope{TeamMemberID: memberID}, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)).
		Return([]clock.Interval{morning}, nil)

	recorder, env := serve(router, http.MethodGet, "/availability/open-intervals?team_member_id="+memberID+"&date=2025-09-01", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var res dto.OpenIntervalsResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "2025-09-01", res.Date)
	assert.Equal(t, []dto.IntervalResponse{{Start: "09:00", End: "12:00"}}, res.Intervals)
}

func TestHandler_CheckConflict(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().HasConflict(gomock.Any(), studioID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, query dto.ConflictQuery) (dto.ConflictResponse, error) {
			assert.Equal(t, "10:00", query.StartTime)
			assert.Equal(t, "11:00", query.EndTime)

			return dto.ConflictResponse{Conflict: true, ConflictingAppointmentID: "appt-1"}, nil
		})

	recorder, env := serve(router, http.MethodGet,
		"/availability/conflicts?team_member_id="+memberID+"&date=2025-09-01&start_time=10:00&end_time=11:00", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var res dto.ConflictResponse
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.True(t, res.Conflict)
	assert.Equal(t, "appt-1", res.ConflictingAppointmentID)
}

func TestHandler_CreateRule(t *testing.T) {
	body := `{"team_member_id":"` + memberID + `","rule_type":"working_hours","day_of_week":1,"start_time":"09:00","end_time":"17:00","is_available":true}`

	t.Run("created", func(t *testing.T) {
		router, svc := newRouter(t)

		member := memberID

		svc.EXPECT().CreateRule(gomock.Any(), studioID, gomock.Any(), userID).
			DoAndReturn(func(_ context.Context, _ string, req dto.CreateRuleRequest, _ string) (model.AvailabilityRule, error) {
				require.NotNil(t, req.DayOfWeek)
				assert.Equal(t, 1, *req.DayOfWeek)

				return model.AvailabilityRule{
					ID:           ruleID,
					StudioID:     studioID,
					TeamMemberID: &member,
					RuleType:     model.RuleTypeWorkingHours,
					DayOfWeek:    1,
					StartTime:    clock.MustParse("09:00"),
					EndTime:      clock.MustParse("17:00"),
					IsAvailable:  true,
				}, nil
			})

		recorder, env := serve(router, http.MethodPost, "/availability/rules", body)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var res dto.RuleResponse
		require.NoError(t, json.Unmarshal(env.Data, &res))
		assert.Equal(t, ruleID, res.ID)
		assert.Equal(t, "working_hours", res.RuleType)
		assert.Equal(t, memberID, res.TeamMemberID)
	})

	t.Run("day of week is required", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, env := serve(router, http.MethodPost, "/availability/rules", strings.Replace(body, `"day_of_week":1,`, "", 1))
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, "day_of_week is required", env.Error)
	})
}

func TestHandler_DeleteRule(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().DeleteRule(gomock.Any(), studioID, ruleID).Return(nil)

	recorder, env := serve(router, http.MethodDelete, "/availability/rules/"+ruleID, "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Availability rule deleted successfully", env.Message)
}

func TestHandler_GetBlockedTimes(t *testing.T) {
	t.Run("single day range", func(t *testing.T) {
		router, svc := newRouter(t)

		day := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)

		svc.EXPECT().ListBlockedTimes(gomock.Any(), studioID, day, day).Return([]model.BlockedTime{}, nil)

		recorder, _ := serve(router, http.MethodGet, "/availability/blocked-times?from=2025-12-25", "")
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("from is required", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder, _ := serve(router, http.MethodGet, "/availability/blocked-times", "")
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
