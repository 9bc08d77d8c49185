package availability

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/model/dto"
	"salon/internal/domains/availability/service"
	"salon/shared"
	"salon/shared/clock"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Availability
	otel    otel.Otel
}

func New(service service.Availability, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/availability", func(routerGroup chi.Router) {
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/open-intervals", handler.GetOpenIntervals)
		routerGroup.Get("/conflicts", handler.CheckConflict)

		routerGroup.Post("/rules", handler.CreateRule)
		routerGroup.Get("/rules", handler.GetRules)
		routerGroup.Delete("/rules/{id}", handler.DeleteRule)

		routerGroup.Post("/blocked-times", handler.CreateBlockedTime)
		routerGroup.Get("/blocked-times", handler.GetBlockedTimes)
		routerGroup.Delete("/blocked-times/{id}", handler.DeleteBlockedTime)
	})
}

// GetSlots generates bookable slots for a service.
// @Summary Generate slots
// @Description Generate start times for a service over a date range, for one team member or everyone who performs it.
// @Tags Availability
// @Produce json
// @Param service_id query string true "Service ID"
// @Param team_member_id query string false "Team member ID"
// @Param location_id query string false "Location ID, defaults to the primary location"
// @Param start_date query string true "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD), defaults to start_date"
// @Param step_minutes query int false "Grid step in minutes"
// @Success 200 {object} response.Data[dto.GetSlotsResponse] "Slots ordered by date, time and team member"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.SlotQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	slots, err := handler.service.GenerateSlots(ctx, studioID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate slots")

		response.WithError(w, err)

		return
	}

	res := dto.GetSlotsResponse{}
	res.FromModels(slots)

	response.WithJSON(w, http.StatusOK, res)
}

// GetOpenIntervals returns the working intervals left after breaks and blocks.
// @Summary Open intervals for a team member
// @Tags Availability
// @Produce json
// @Param team_member_id query string true "Team member ID"
// @Param location_id query string false "Location ID"
// @Param service_id query string false "Service ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OpenIntervalsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/open-intervals [get]
// @Security BearerAuth
func (handler *Handler) GetOpenIntervals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOpenIntervals")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.OpenIntervalsQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	date, err := clock.ParseDate(query.Date)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, failure.BadRequest(err))

		return
	}

	target := model.Scope{
		TeamMemberID: query.TeamMemberID,
		LocationID:   query.LocationID,
		ServiceID:    query.ServiceID,
	}

	intervals, err := handler.service.OpenIntervals(ctx, studioID, target, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to evaluate open intervals")

		response.WithError(w, err)

		return
	}

	res := dto.OpenIntervalsResponse{
		Date:         query.Date,
		TeamMemberID: query.TeamMemberID,
		LocationID:   query.LocationID,
	}
	res.FromIntervals(intervals)

	response.WithJSON(w, http.StatusOK, res)
}

// CheckConflict reports whether a team member is already booked over a time range.
// @Summary Check for a booking conflict
// @Tags Availability
// @Produce json
// @Param team_member_id query string true "Team member ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start (HH:MM)"
// @Param end_time query string true "End (HH:MM)"
// @Param exclude_appointment_id query string false "Appointment to ignore, e.g. the one being rescheduled"
// @Success 200 {object} response.Data[dto.ConflictResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/conflicts [get]
// @Security BearerAuth
func (handler *Handler) CheckConflict(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConflict")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.ConflictQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.HasConflict(ctx, studioID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check conflict")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CreateRule adds an availability rule.
// @Summary Create an availability rule
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateRuleRequest true "Create Rule Request"
// @Success 201 {object} response.Data[dto.RuleResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rules [post]
// @Security BearerAuth
func (handler *Handler) CreateRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRule")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateRuleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	rule, err := handler.service.CreateRule(ctx, studioID, req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create availability rule")

		response.WithError(w, err)

		return
	}

	res := dto.RuleResponse{}
	res.FromModel(rule)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRules lists availability rules.
// @Summary List availability rules
// @Tags Availability
// @Produce json
// @Param team_member_id query string false "Only rules that apply to this team member"
// @Success 200 {object} response.Data[dto.GetRulesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/availability/rules [get]
// @Security BearerAuth
func (handler *Handler) GetRules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRules")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	rules, err := handler.service.ListRules(ctx, studioID, r.URL.Query().Get("team_member_id"))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list availability rules")

		response.WithError(w, err)

		return
	}

	res := dto.GetRulesResponse{}
	res.FromModels(rules)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteRule removes an availability rule.
// @Summary Delete an availability rule
// @Tags Availability
// @Produce json
// @Param id path string true "Rule ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/rules/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRule")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteRule(ctx, studioID, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete availability rule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability rule deleted by user " + actorID)

	response.WithMessage(w, http.StatusOK, "Availability rule deleted successfully")
}

// CreateBlockedTime blocks out time for a team member, a location or the whole studio.
// @Summary Create a blocked time
// @Tags Availability
// @Accept json
// @Produce json
// @Param request body dto.CreateBlockedTimeRequest true "Create Blocked Time Request"
// @Success 201 {object} response.Data[dto.BlockedTimeResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/blocked-times [post]
// @Security BearerAuth
func (handler *Handler) CreateBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBlockedTime")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateBlockedTimeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	block, err := handler.service.CreateBlockedTime(ctx, studioID, req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create blocked time")

		response.WithError(w, err)

		return
	}

	res := dto.BlockedTimeResponse{}
	res.FromModel(block)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetBlockedTimes lists blocked times touching a date range, recurring ones included.
// @Summary List blocked times
// @Tags Availability
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetBlockedTimesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/blocked-times [get]
// @Security BearerAuth
func (handler *Handler) GetBlockedTimes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedTimes")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.BlockedTimeQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	from, _ := clock.ParseDate(query.From)
	to, _ := clock.ParseDate(query.To)

	blocks, err := handler.service.ListBlockedTimes(ctx, studioID, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list blocked times")

		response.WithError(w, err)

		return
	}

	res := dto.GetBlockedTimesResponse{}
	res.FromModels(blocks)

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteBlockedTime removes a blocked time.
// @Summary Delete a blocked time
// @Tags Availability
// @Produce json
// @Param id path string true "Blocked time ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/availability/blocked-times/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBlockedTime(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBlockedTime")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.DeleteBlockedTime(ctx, studioID, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete blocked time")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked time deleted by user " + actorID)

	response.WithMessage(w, http.StatusOK, "Blocked time deleted successfully")
}
