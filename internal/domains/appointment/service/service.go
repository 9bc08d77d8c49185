package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Appointment=MockAppointmentService

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/appointment/model/dto"
	"salon/internal/domains/appointment/repository"
	availabilityService "salon/internal/domains/availability/service"
	catalogModel "salon/internal/domains/catalog/model"
	catalogService "salon/internal/domains/catalog/service"
	clientModel "salon/internal/domains/client/model"
	clientService "salon/internal/domains/client/service"
	studioService "salon/internal/domains/studio/service"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/clock"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	gModel "salon/shared/model"
	"salon/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment = "appointment:get"
)

// Appointment drives the booking lifecycle. Every operation takes the acting
// user explicitly and records it on the history row it writes.
type Appointment interface {
	Book(ctx context.Context, studioID string, req dto.BookRequest, actorID string) (model.Appointment, error)
	Get(ctx context.Context, studioID, id string) (model.Appointment, error)
	List(ctx context.Context, studioID string, query dto.ListQuery) ([]model.Appointment, error)
	History(ctx context.Context, studioID, id string, params gDto.QueryParams) ([]model.History, error)

	Reschedule(ctx context.Context, studioID, id string, req dto.RescheduleRequest, actorID string) (model.Appointment, error)
	Confirm(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)
	Arrive(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)
	Start(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)
	Complete(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)
	NoShow(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error)
	Cancel(ctx context.Context, studioID, id string, req dto.CancelRequest, actorID string) (model.Appointment, error)

	RecordPayment(ctx context.Context, studioID, id string, req dto.PaymentRequest, actorID string) (model.Appointment, error)
	MarkConfirmationSent(ctx context.Context, studioID, id string) error
	MarkReminderSent(ctx context.Context, studioID, id string) error
}

type serviceImpl struct {
	repo         repository.Appointment
	availability availabilityService.Availability
	catalog      catalogService.Catalog
	studios      studioService.Studio
	clients      clientService.Client
	kafka        kafka.Client
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Appointment,
	availability availabilityService.Availability,
	catalog catalogService.Catalog,
	studios studioService.Studio,
	clients clientService.Client,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:         repo,
		availability: availability,
		catalog:      catalog,
		studios:      studios,
		clients:      clients,
		kafka:        kafka,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Book(ctx context.Context, studioID string, req dto.BookRequest, actorID string) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(&err)

	date, start, err := parseSlot(req.Date, req.StartTime)
	if err != nil {
		return res, err
	}

	scope.SetAttributes(map[string]any{
		"studio_id":      studioID,
		"team_member_id": req.TeamMemberID,
		"date":           date,
		"start_time":     start,
	})

	service, err := s.catalog.GetService(ctx, studioID, req.ServiceID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	member, err := s.studios.GetTeamMember(ctx, studioID, req.TeamMemberID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	location, err := s.studios.ResolveLocation(ctx, studioID, req.LocationID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	end, err := clock.AddMinutes(start, service.DurationMinutes)
	if err != nil {
		return res, failure.BadRequestFromString("appointment must end on the day it starts") // nolint:wrapcheck
	}

	source := model.BookingSource(req.BookingSource)
	if source == "" {
		source = model.BookingSourceStaff
	}

	res = model.Appointment{
		ID:              uuid.NewString(),
		StudioID:        studioID,
		TeamMemberID:    member.ID,
		ServiceID:       service.ID,
		LocationID:      location.ID,
		AppointmentDate: date,
		StartTime:       start,
		EndTime:         end,
		SetupMinutes:    service.Buffer.SetupMinutes,
		CleanupMinutes:  service.Buffer.CleanupMinutes,
		TravelMinutes:   service.Buffer.TravelMinutes,
		Status:          model.StatusScheduled,
		PaymentStatus:   model.PaymentStatusFor(0, service.Price),
		TotalPrice:      service.Price,
		BookingSource:   source,
		Notes:           req.Notes,
		Version:         1,
		Metadata:        gModel.NewMetadata(actorID),
	}

	if err = s.availability.ValidateSlot(ctx, studioID, slotCheck(res, service, source == model.BookingSourceOnline)); err != nil {
		return model.Appointment{}, err //nolint:wrapcheck
	}

	clientID, newClient, err := s.resolveClient(ctx, studioID, req, actorID)
	if err != nil {
		return model.Appointment{}, err
	}

	res.ClientID = clientID

	history := newHistory(res.ID, model.ChangeTypeCreated, nil, withStatus(res.Slot(), res.Status), actorID, req.Notes)

	if err = s.repo.Create(ctx, res, history, newClient); err != nil {
		log.Error().Err(err).Str("team_member_id", res.TeamMemberID).Msg("failed to book appointment")

		return model.Appointment{}, s.wrap(err, "failed to book appointment")
	}

	s.afterChange(ctx, model.EventBooked, res, actorID)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, studioID, id string) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAppointment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, studioID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.load(ctx, studioID, id)
	if err != nil {
		return res, err
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save appointment to cache")
	}

	return res, nil
}

func (s *serviceImpl) List(ctx context.Context, studioID string, query dto.ListQuery) (res []model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListAppointments")
	defer scope.End()
	defer scope.TraceIfError(&err)

	from, err := clock.ParseDate(query.From)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	to, err := clock.ParseDate(query.To)
	if err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if to.Before(from) {
		return nil, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	if clock.DaysBetween(from, to) > s.cfg.Scheduling.MaxRangeDays {
		return nil, failure.BadRequestf("date range may span at most %d days", s.cfg.Scheduling.MaxRangeDays) // nolint:wrapcheck
	}

	statuses := query.Statuses()
	for _, status := range statuses {
		if !status.Valid() {
			return nil, failure.BadRequestf("unknown appointment status %q", status) // nolint:wrapcheck
		}
	}

	res, err = s.repo.FindByRange(ctx, studioID, model.Filter{
		From:         from,
		To:           to,
		Statuses:     statuses,
		TeamMemberID: query.TeamMemberID,
		LocationID:   query.LocationID,
	})
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to list appointments")

		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}

	return res, nil
}

// History returns one page of the change log of an appointment, oldest first.
func (s *serviceImpl) History(ctx context.Context, studioID, id string, params gDto.QueryParams) (res []model.History, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".History")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if _, err = s.load(ctx, studioID, id); err != nil {
		return nil, err
	}

	params.Clamp(s.cfg.Scheduling.MaxHistoryPageLength)

	res, err = s.repo.History(ctx, id, params)
	if err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to get appointment history")

		return nil, fmt.Errorf("failed to get appointment history: %w", err)
	}

	return res, nil
}

// Reschedule moves the appointment in place. The end time is recomputed from the
// service duration and the new time is validated as if it were a new booking,
// ignoring the appointment's own current slot.
func (s *serviceImpl) Reschedule(ctx context.Context, studioID, id string, req dto.RescheduleRequest, actorID string) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current, err := s.load(ctx, studioID, id)
	if err != nil {
		return res, err
	}

	status, change, err := model.Next(current.Status, model.ActionReschedule)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	date, start, err := parseSlot(req.Date, req.StartTime)
	if err != nil {
		return res, err
	}

	next := current
	next.AppointmentDate = date
	next.StartTime = start
	next.Status = status

	service, err := s.catalog.GetService(ctx, studioID, or(req.ServiceID, current.ServiceID))
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if service.ID != current.ServiceID {
		next.ServiceID = service.ID
		next.TotalPrice = service.Price
		next.PaymentStatus = model.PaymentStatusFor(current.PaidAmount, service.Price)
	}

	next.SetupMinutes = service.Buffer.SetupMinutes
	next.CleanupMinutes = service.Buffer.CleanupMinutes
	next.TravelMinutes = service.Buffer.TravelMinutes

	if req.TeamMemberID != constant.Empty && req.TeamMemberID != current.TeamMemberID {
		member, err := s.studios.GetTeamMember(ctx, studioID, req.TeamMemberID)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		next.TeamMemberID = member.ID
	}

	if req.LocationID != constant.Empty && req.LocationID != current.LocationID {
		location, err := s.studios.GetLocation(ctx, studioID, req.LocationID)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		next.LocationID = location.ID
	}

	if next.EndTime, err = clock.AddMinutes(start, service.DurationMinutes); err != nil {
		return res, failure.BadRequestFromString("appointment must end on the day it starts") // nolint:wrapcheck
	}

	if err = s.availability.ValidateSlot(ctx, studioID, slotCheck(next, service, false)); err != nil {
		return res, err //nolint:wrapcheck
	}

	next.ModifiedAt = timezone.Now()
	next.ModifiedBy = actorID

	history := newHistory(current.ID, change,
		withStatus(current.Slot(), current.Status),
		withStatus(next.Slot(), next.Status),
		actorID, req.Notes,
	)

	if err = s.repo.Reschedule(ctx, current, next, history); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to reschedule appointment")

		return res, s.wrap(err, "failed to reschedule appointment")
	}

	next.Version++

	s.afterChange(ctx, model.EventRescheduled, next, actorID)

	return next, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionConfirm, req.Notes, actorID, nil)
}

func (s *serviceImpl) Arrive(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionArrive, req.Notes, actorID, nil)
}

func (s *serviceImpl) Start(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionStart, req.Notes, actorID, nil)
}

func (s *serviceImpl) Complete(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionComplete, req.Notes, actorID, nil)
}

func (s *serviceImpl) NoShow(ctx context.Context, studioID, id string, req dto.TransitionRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionNoShow, req.Notes, actorID, nil)
}

// Cancel frees the slot. Cancelling an already cancelled appointment changes nothing.
func (s *serviceImpl) Cancel(ctx context.Context, studioID, id string, req dto.CancelRequest, actorID string) (model.Appointment, error) {
	return s.transition(ctx, studioID, id, model.ActionCancel, req.Reason, actorID, map[string]any{
		model.FieldCancellationReason: req.Reason,
	})
}

func (s *serviceImpl) transition(
	ctx context.Context,
	studioID, id string,
	action model.Action,
	notes, actorID string,
	extra map[string]any,
) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current, err := s.load(ctx, studioID, id)
	if err != nil {
		return res, err
	}

	if action == model.ActionCancel && current.Status == model.StatusCancelled {
		return current, nil
	}

	status, change, err := model.Next(current.Status, action)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	if field, ok := stampedOn[status]; ok {
		fields[field] = now
	}

	for field, value := range extra {
		fields[field] = value
	}

	history := newHistory(current.ID, change,
		model.Values{"status": current.Status},
		model.Values{"status": status},
		actorID, notes,
	)

	if err = s.repo.Transition(ctx, current, fields, history); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Str("action", string(action)).Msg("failed to change appointment status")

		return res, s.wrap(err, "failed to change appointment status")
	}

	res = current
	res.Status = status
	res.ModifiedAt = now
	res.ModifiedBy = actorID
	res.Version++
	stamp(&res, status, now)

	if action == model.ActionCancel {
		res.CancellationReason = notes
	}

	event := model.EventStatusChange
	if status == model.StatusCancelled {
		event = model.EventCancelled
	}

	s.afterChange(ctx, event, res, actorID)

	return res, nil
}

// RecordPayment adds amount to what the client has paid so far.
func (s *serviceImpl) RecordPayment(ctx context.Context, studioID, id string, req dto.PaymentRequest, actorID string) (res model.Appointment, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordPayment")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if req.Amount <= 0 {
		return res, failure.BadRequestFromString("payment amount must be positive") // nolint:wrapcheck
	}

	current, err := s.load(ctx, studioID, id)
	if err != nil {
		return res, err
	}

	if current.Status == model.StatusCancelled || current.Status == model.StatusNoShow {
		return res, failure.BadRequestf("cannot record a payment on an appointment that is %s", current.Status) // nolint:wrapcheck
	}

	paid := current.PaidAmount + req.Amount
	if paid > current.TotalPrice {
		return res, failure.BadRequestFromString("payment exceeds the outstanding amount") // nolint:wrapcheck
	}

	status := model.PaymentStatusFor(paid, current.TotalPrice)
	now := timezone.Now()

	fields := map[string]any{
		model.FieldPaidAmount:    paid,
		model.FieldPaymentStatus: status,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: actorID,
	}

	history := newHistory(current.ID, model.ChangeTypeUpdated,
		model.Values{"paid_amount": current.PaidAmount, "payment_status": current.PaymentStatus},
		model.Values{"paid_amount": paid, "payment_status": status},
		actorID, req.Notes,
	)

	if err = s.repo.UpdateFields(ctx, current, fields, &history); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to record payment")

		return res, s.wrap(err, "failed to record payment")
	}

	res = current
	res.PaidAmount = paid
	res.PaymentStatus = status
	res.ModifiedAt = now
	res.ModifiedBy = actorID
	res.Version++

	s.afterChange(ctx, model.EventPaid, res, actorID)

	return res, nil
}

func (s *serviceImpl) MarkConfirmationSent(ctx context.Context, studioID, id string) error {
	return s.markSent(ctx, studioID, id, model.FieldConfirmationSentAt)
}

func (s *serviceImpl) MarkReminderSent(ctx context.Context, studioID, id string) error {
	return s.markSent(ctx, studioID, id, model.FieldReminderSentAt)
}

// markSent stamps a notification timestamp. It is bookkeeping only and writes no history.
func (s *serviceImpl) markSent(ctx context.Context, studioID, id, field string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkSent")
	defer scope.End()
	defer scope.TraceIfError(&err)

	current, err := s.load(ctx, studioID, id)
	if err != nil {
		return err
	}

	if err = s.repo.UpdateFields(ctx, current, map[string]any{field: timezone.Now()}, nil); err != nil {
		log.Error().Err(err).Str("appointment_id", id).Str("field", field).Msg("failed to stamp notification")

		return s.wrap(err, "failed to stamp notification")
	}

	s.invalidate(ctx, current)

	return nil
}

// load reads the stored appointment, bypassing the cache, so writes see the current version.
func (s *serviceImpl) load(ctx context.Context, studioID, id string) (model.Appointment, error) {
	res, err := s.repo.Get(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("appointment_id", id).Msg("failed to get appointment")

		return res, fmt.Errorf("failed to get appointment: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	return res, nil
}

// resolveClient returns the client to book for. A client described inline is only
// built here and is inserted in the appointment's transaction.
func (s *serviceImpl) resolveClient(ctx context.Context, studioID string, req dto.BookRequest, actorID string) (*string, *clientModel.Client, error) {
	switch {
	case req.ClientID != constant.Empty:
		client, err := s.clients.Get(ctx, studioID, req.ClientID)
		if err != nil {
			return nil, nil, err //nolint:wrapcheck
		}

		return &client.ID, nil, nil
	case req.Client != nil:
		client := req.Client.ToModel(studioID, actorID)

		return &client.ID, &client, nil
	default:
		return nil, nil, nil
	}
}

// afterChange runs once a change is committed. Its failures are logged only.
func (s *serviceImpl) afterChange(ctx context.Context, eventType model.EventType, appointment model.Appointment, actorID string) {
	s.invalidate(ctx, appointment)
	s.availability.InvalidateSlots(ctx, appointment.StudioID)

	event := model.NewEvent(eventType, appointment, actorID, timezone.Now())

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topic.AppointmentEvents, kafka.Message{
		Key:     appointment.ID,
		Value:   event,
		Headers: map[string]string{"event_type": string(eventType)},
	})
	if err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Str("event", string(eventType)).Msg("failed to publish appointment event")
	}
}

func (s *serviceImpl) invalidate(ctx context.Context, appointment model.Appointment) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetAppointment, appointment.StudioID, appointment.ID)); err != nil {
		log.Error().Err(err).Str("appointment_id", appointment.ID).Msg("failed to invalidate appointment cache")
	}
}

// wrap keeps domain failures intact so callers can still tell a lost slot apart.
func (s *serviceImpl) wrap(err error, msg string) error {
	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}

var stampedOn = map[model.Status]string{
	model.StatusArrived:    model.FieldArrivedAt,
	model.StatusInProgress: model.FieldStartedAt,
	model.StatusCompleted:  model.FieldCompletedAt,
	model.StatusCancelled:  model.FieldCancelledAt,
}

func stamp(appointment *model.Appointment, status model.Status, at time.Time) {
	switch status {
	case model.StatusArrived:
		appointment.ArrivedAt = &at
	case model.StatusInProgress:
		appointment.StartedAt = &at
	case model.StatusCompleted:
		appointment.CompletedAt = &at
	case model.StatusCancelled:
		appointment.CancelledAt = &at
	}
}

func slotCheck(appointment model.Appointment, service catalogModel.BookableService, enforceAdvance bool) availabilityService.SlotCheck {
	return availabilityService.SlotCheck{
		TeamMemberID:         appointment.TeamMemberID,
		LocationID:           appointment.LocationID,
		ServiceID:            service.ID,
		ExcludeAppointmentID: appointment.ID,
		Date:                 appointment.AppointmentDate,
		Start:                appointment.StartTime,
		Duration:             service.DurationMinutes,
		SetupMinutes:         service.Buffer.SetupMinutes,
		CleanupMinutes:       service.Buffer.CleanupMinutes,
		TravelMinutes:        service.Buffer.TravelMinutes,
		EnforceAdvance:       enforceAdvance,
	}
}

func newHistory(appointmentID string, change model.ChangeType, oldValues, newValues model.Values, actorID, notes string) model.History {
	return model.History{
		ID:            uuid.NewString(),
		AppointmentID: appointmentID,
		ChangeType:    change,
		OldValues:     oldValues,
		NewValues:     newValues,
		ChangedBy:     actorID,
		Notes:         notes,
		CreatedAt:     timezone.Now(),
	}
}

func withStatus(values model.Values, status model.Status) model.Values {
	values["status"] = status

	return values
}

func parseSlot(dateValue, startValue string) (time.Time, clock.TimeOfDay, error) {
	date, err := clock.ParseDate(dateValue)
	if err != nil {
		return date, 0, failure.BadRequest(err) // nolint:wrapcheck
	}

	start, err := clock.ParseTimeOfDay(startValue)
	if err != nil {
		return date, 0, failure.BadRequest(err) // nolint:wrapcheck
	}

	return date, start, nil
}

func or(value, fallback string) string {
	if value == constant.Empty {
		return fallback
	}

	return value
}
