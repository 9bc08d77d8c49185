package appointment

import (
	"context"
	"net/http"
	"salon/infras/otel"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/service"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/validator"
	"salon/transport/http/middleware"
	"salon/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.Book)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Get("/{id}/history", handler.GetHistory)
		routerGroup.Post("/{id}/reschedule", handler.Reschedule)
		routerGroup.Post("/{id}/confirm", handler.Confirm)
		routerGroup.Post("/{id}/arrive", handler.Arrive)
		routerGroup.Post("/{id}/start", handler.Start)
		routerGroup.Post("/{id}/complete", handler.Complete)
		routerGroup.Post("/{id}/no-show", handler.NoShow)
		routerGroup.Post("/{id}/cancel", handler.Cancel)
		routerGroup.Post("/{id}/payments", handler.RecordPayment)
		routerGroup.With(middleware.InternalOnly).Post("/{id}/confirmation-sent", handler.MarkConfirmationSent)
		routerGroup.With(middleware.InternalOnly).Post("/{id}/reminder-sent", handler.MarkReminderSent)
	})
}

// Book handles booking a new appointment.
// @Summary Book an appointment
// @Description Book a service with a team member at a location. The slot is revalidated against current availability.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookRequest true "Book Request"
// @Success 201 {object} response.Data[dto.AppointmentResponse] "Appointment booked"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot no longer available"
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) Book(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Book")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(writer, err)

		return
	}

	req := dto.BookRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	appointment, err := handler.service.Book(ctx, studioID, req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment " + appointment.ID + " booked by user " + actorID)

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetAppointments lists appointments in a date range.
// @Summary List appointments
// @Description List appointments between two dates, optionally filtered by status, team member or location.
// @Tags Appointment
// @Produce json
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Param status query string false "Comma separated statuses"
// @Param team_member_id query string false "Filter by team member ID"
// @Param location_id query string false "Filter by location ID"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	query := dto.ListQuery{}
	query.FromRequest(r)

	if err := validator.ValidateStruct(&query); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	appointments, err := handler.service.List(ctx, studioID, query)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list appointments")

		response.WithError(w, err)

		return
	}

	res := dto.GetAppointmentsResponse{}
	res.FromModels(appointments)

	response.WithJSON(w, http.StatusOK, res)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.Get(ctx, studioID, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(w, http.StatusOK, res)
}

// GetHistory returns the audit trail of an appointment, oldest first.
// @Summary Get appointment history
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Param page query int false "Page, starting at 1"
// @Param limit query int false "Rows per page, capped by the server"
// @Success 200 {object} response.Data[dto.GetHistoryResponse] "Appointment history"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/history [get]
// @Security BearerAuth
func (handler *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHistory")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	params := gDto.QueryParams{}
	params.FromRequest(r)

	history, err := handler.service.History(ctx, studioID, chi.URLParam(r, constant.RequestParamID), params)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment history")

		response.WithError(w, err)

		return
	}

	res := dto.GetHistoryResponse{}
	res.FromModels(history)

	response.WithJSON(w, http.StatusOK, res)
}

// Reschedule moves an appointment to a new slot.
// @Summary Reschedule an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleRequest true "Reschedule Request"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment rescheduled"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot no longer available or appointment changed concurrently"
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) Reschedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Reschedule")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.RescheduleRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.Reschedule(ctx, studioID, chi.URLParam(r, constant.RequestParamID), req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reschedule appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment " + appointment.ID + " rescheduled by user " + actorID)

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(w, http.StatusOK, res)
}

type transitionFunc func(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)

// transition decodes an optional notes body and applies a status change.
func (handler *Handler) transition(w http.ResponseWriter, r *http.Request, name string, apply transitionFunc) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.TransitionRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	appointment, err := apply(ctx, studioID, chi.URLParam(r, constant.RequestParamID), req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", name).Msg("failed to change appointment status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment " + appointment.ID + " is now " + string(appointment.Status))

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(w, http.StatusOK, res)
}

// Confirm marks a scheduled appointment as confirmed.
// @Summary Confirm an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionRequest false "Notes"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/confirm [post]
// @Security BearerAuth
func (handler *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Confirm", handler.service.Confirm)
}

// Arrive records that the client has arrived.
// @Summary Check in a client
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionRequest false "Notes"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/arrive [post]
// @Security BearerAuth
func (handler *Handler) Arrive(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Arrive", handler.service.Arrive)
}

// Start records that service has begun.
// @Summary Start an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionRequest false "Notes"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) Start(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Start", handler.service.Start)
}

// Complete finishes an in-progress appointment.
// @Summary Complete an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionRequest false "Notes"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "Complete", handler.service.Complete)
}

// NoShow records that the client never arrived.
// @Summary Mark an appointment as no-show
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.TransitionRequest false "Notes"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/no-show [post]
// @Security BearerAuth
func (handler *Handler) NoShow(w http.ResponseWriter, r *http.Request) {
	handler.transition(w, r, "NoShow", handler.service.NoShow)
}

// Cancel cancels an appointment. Cancelling twice is harmless.
// @Summary Cancel an appointment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelRequest false "Cancellation reason"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error "Transition not allowed"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Cancel")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.CancelRequest{}
	if r.ContentLength > 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	appointment, err := handler.service.Cancel(ctx, studioID, chi.URLParam(r, constant.RequestParamID), req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment " + appointment.ID + " cancelled by user " + actorID)

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(w, http.StatusOK, res)
}

// RecordPayment adds a payment to the appointment's running total.
// @Summary Record a payment
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.PaymentRequest true "Payment Request"
// @Success 200 {object} response.Data[dto.AppointmentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/appointments/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordPayment")
	defer scope.End()

	studioID, actorID, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	req := dto.PaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	appointment, err := handler.service.RecordPayment(ctx, studioID, chi.URLParam(r, constant.RequestParamID), req, actorID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record payment")

		response.WithError(w, err)

		return
	}

	res := dto.AppointmentResponse{}
	res.FromModel(appointment)

	response.WithJSON(w, http.StatusOK, res)
}

// MarkConfirmationSent is called by the notifier after the booking confirmation went out.
// @Summary Mark confirmation as sent
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/appointments/{id}/confirmation-sent [post]
// @Security ApiKeyAuth
func (handler *Handler) MarkConfirmationSent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkConfirmationSent")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkConfirmationSent(ctx, studioID, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark confirmation as sent")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Confirmation marked as sent")
}

// MarkReminderSent is called by the notifier after the reminder went out.
// @Summary Mark reminder as sent
// @Tags Appointment
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/appointments/{id}/reminder-sent [post]
// @Security ApiKeyAuth
func (handler *Handler) MarkReminderSent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MarkReminderSent")
	defer scope.End()

	studioID, _, err := shared.Identity(ctx)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if err := handler.service.MarkReminderSent(ctx, studioID, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to mark reminder as sent")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Reminder marked as sent")
}
