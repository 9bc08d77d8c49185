package waitlist

import (
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/waitlist/model/dto"
	"salon/internal/domains/waitlist/service"
	"salon/shared"
	"salon/shared/constant"
	"salon/shared/validator"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Waitlist
	otel    otel.Otel
}

func New(service service.Waitlist, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/waitlist", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddEntry)
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Get("/matches", handler.GetMatches)
		routerGroup.Post("/{id}/fulfill", handler.Fulfill)
		routerGroup.Delete("/{id}", handler.Deactivate)
	})
}

// AddEntry puts a client on the waitlist.
// @Summary Add a waitlist entry
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param request body dto.CreateEntryRequest true "Create Entry Request"
// @Success 201 {object} response.Data[dto.EntryResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waitlist [post]
// @Security BearerAuth
func (handler *Handler) AddEntry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddWaitlistEntry")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CreateEntryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Add(ctx, studioID, req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add waitlist entry")

		response.WithError(w, err)

		return
	}

	res := dto.EntryResponse{}
	res.FromModel(entry)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEntries lists active entries, next to be offered first.
// @Summary List the waitlist
// @Tags Waitlist
// @Produce json
// @Success 200 {object} response.Data[dto.GetEntriesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/waitlist [get]
// @Security BearerAuth
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitlist")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	entries, err := handler.service.List(ctx, studioID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list waitlist")

		response.WithError(w, err)

		return
	}

	res := dto.GetEntriesResponse{}
	res.FromModels(entries)

	response.WithJSON(w, http.StatusOK, res)
}

// GetMatches finds who would take a freed slot.
// @Summary Match the waitlist against an opening
// @Tags Waitlist
// @Produce json
// @Param service_id query string true "Service ID"
// @Param location_id query string true "Location ID"
// @Param team_member_id query string true "Team member ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start_time query string true "Start (HH:MM)"
// @Param end_time query string true "End (HH:MM)"
// @Success 200 {object} response.Data[dto.GetEntriesResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waitlist/matches [get]
// @Security BearerAuth
func (handler *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWaitlistMatches")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.MatchQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	entries, err := handler.service.Matches(ctx, studioID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to match waitlist")

		response.WithError(w, err)

		return
	}

	res := dto.GetEntriesResponse{}
	res.FromModels(entries)

	response.WithJSON(w, http.StatusOK, res)
}

// Fulfill links an entry to the appointment booked for it.
// @Summary Fulfill a waitlist entry
// @Tags Waitlist
// @Accept json
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Param request body dto.FulfillRequest true "Fulfill Request"
// @Success 200 {object} response.Data[dto.EntryResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Entry no longer active"
// @Failure 500 {object} response.Error
// @Router /v1/waitlist/{id}/fulfill [post]
// @Security BearerAuth
func (handler *Handler) Fulfill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".FulfillWaitlistEntry")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.FulfillRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	entry, err := handler.service.Fulfill(ctx, studioID, chi.URLParam(r, constant.RequestParamID), req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to fulfill waitlist entry")

		response.WithError(w, err)

		return
	}

	res := dto.EntryResponse{}
	res.FromModel(entry)

	response.WithJSON(w, http.StatusOK, res)
}

// Deactivate withdraws an entry from the waitlist.
// @Summary Withdraw a waitlist entry
// @Tags Waitlist
// @Produce json
// @Param id path string true "Waitlist entry ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/waitlist/{id} [delete]
// @Security BearerAuth
func (handler *Handler) Deactivate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateWaitlistEntry")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.Deactivate(ctx, studioID, chi.URLParam(r, constant.RequestParamID), actorID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate waitlist entry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Waitlist entry withdrawn by user " + actorID)

	response.WithMessage(w, http.StatusOK, "Waitlist entry withdrawn successfully")
}
