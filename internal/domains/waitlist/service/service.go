package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Waitlist=MockWaitlistService

import (
	"context"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	appointmentService "salon/internal/domains/appointment/service"
	clientService "salon/internal/domains/client/service"
	"salon/internal/domains/waitlist/model"
	"salon/internal/domains/waitlist/model/dto"
	"salon/internal/domains/waitlist/repository"
	"salon/shared/clock"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Waitlist keeps clients waiting for an opening. Fulfillment is always an explicit
// call; appointment status changes never consume entries on their own.
type Waitlist interface {
	Add(ctx context.Context, studioID string, req dto.CreateEntryRequest, actorID string) (model.Entry, error)
	List(ctx context.Context, studioID string) ([]model.Entry, error)
	Matches(ctx context.Context, studioID string, query dto.MatchQuery) ([]model.Entry, error)
	Fulfill(ctx context.Context, studioID, id string, req dto.FulfillRequest, actorID string) (model.Entry, error)
	Deactivate(ctx context.Context, studioID, id, actorID string) error
}

type serviceImpl struct {
	repo         repository.Waitlist
	clients      clientService.Client
	appointments appointmentService.Appointment
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Waitlist,
	clients clientService.Client,
	appointments appointmentService.Appointment,
	cfg *config.Config,
	otel otel.Otel,
) Waitlist {
	return &serviceImpl{
		repo:         repo,
		clients:      clients,
		appointments: appointments,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, studioID string, req dto.CreateEntryRequest, actorID string) (res model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddToWaitlist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	entry := req.ToModel(studioID, actorID)

	if entry.PreferredDateFrom != nil && entry.PreferredDateTo != nil && entry.PreferredDateTo.Before(*entry.PreferredDateFrom) {
		return res, failure.BadRequestFromString("preferred date range is reversed") // nolint:wrapcheck
	}

	if entry.PreferredTimeStart.Valid && entry.PreferredTimeEnd.Valid && !entry.PreferredTimeStart.Time.Before(entry.PreferredTimeEnd.Time) {
		return res, failure.BadRequestFromString("preferred time window must end after it starts") // nolint:wrapcheck
	}

	if _, err = s.clients.Get(ctx, studioID, entry.ClientID); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, entry); err != nil {
		if postgres.ErrorCode(err) == constant.PqErrorCodeFkViolation {
			return res, failure.BadRequestFromString("waitlist entry references a record that does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("client_id", entry.ClientID).Msg("failed to add waitlist entry")

		return res, fmt.Errorf("failed to add waitlist entry: %w", err)
	}

	return entry, nil
}

// List returns active entries in fulfillment order.
func (s *serviceImpl) List(ctx context.Context, studioID string) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListWaitlist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.ListActive(ctx, studioID, 0)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to list waitlist")

		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}

	model.SortForFulfillment(res)

	return res, nil
}

// Matches returns the entries that would take the opening, best candidate first.
func (s *serviceImpl) Matches(ctx context.Context, studioID string, query dto.MatchQuery) (res []model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MatchWaitlist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	opening := model.Opening{
		ServiceID:    query.ServiceID,
		LocationID:   query.LocationID,
		TeamMemberID: query.TeamMemberID,
	}

	if opening.Date, err = clock.ParseDate(query.Date); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if opening.Start, err = clock.ParseTimeOfDay(query.StartTime); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if opening.End, err = clock.ParseTimeOfDay(query.EndTime); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = clock.DurationMinutes(opening.Start, opening.End); err != nil {
		return nil, failure.BadRequest(err) // nolint:wrapcheck
	}

	candidates, err := s.repo.FindCandidates(ctx, studioID, opening)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to find waitlist candidates")

		return nil, fmt.Errorf("failed to find waitlist candidates: %w", err)
	}

	res = []model.Entry{}

	for _, entry := range candidates {
		if entry.Matches(opening) {
			res = append(res, entry)
		}
	}

	model.SortForFulfillment(res)

	if limit := s.cfg.Scheduling.MaxWaitlistMatches; limit > 0 && len(res) > limit {
		res = res[:limit]
	}

	return res, nil
}

// Fulfill links the entry to the appointment that served it and retires the entry.
func (s *serviceImpl) Fulfill(ctx context.Context, studioID, id string, req dto.FulfillRequest, actorID string) (res model.Entry, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".FulfillWaitlist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	entry, err := s.load(ctx, studioID, id)
	if err != nil {
		return res, err
	}

	if !entry.IsActive {
		return res, failure.Conflict("waitlist entry is no longer active") // nolint:wrapcheck
	}

	appointment, err := s.appointments.Get(ctx, studioID, req.AppointmentID)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if appointment.ClientID != nil && *appointment.ClientID != entry.ClientID {
		return res, failure.BadRequestFromString("appointment belongs to a different client") // nolint:wrapcheck
	}

	now := timezone.Now()
	fields := map[string]any{
		model.FieldIsActive:               false,
		model.FieldFulfilledAppointmentID: appointment.ID,
		constant.FieldModifiedAt:          now,
		constant.FieldModifiedBy:          actorID,
	}

	if err = s.repo.UpdateActive(ctx, studioID, id, fields); err != nil {
		log.Error().Err(err).Str("waitlist_id", id).Msg("failed to fulfill waitlist entry")

		return res, fmt.Errorf("failed to fulfill waitlist entry: %w", err)
	}

	entry.IsActive = false
	entry.FulfilledAppointmentID = &appointment.ID
	entry.ModifiedAt = now
	entry.ModifiedBy = actorID

	return entry, nil
}

// Deactivate withdraws an entry. Withdrawing an inactive entry changes nothing.
func (s *serviceImpl) Deactivate(ctx context.Context, studioID, id, actorID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeactivateWaitlist")
	defer scope.End()
	defer scope.TraceIfError(&err)

	entry, err := s.load(ctx, studioID, id)
	if err != nil {
		return err
	}

	if !entry.IsActive {
		return nil
	}

	fields := map[string]any{
		model.FieldIsActive:      false,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actorID,
	}

	if err = s.repo.UpdateActive(ctx, studioID, id, fields); err != nil {
		log.Error().Err(err).Str("waitlist_id", id).Msg("failed to deactivate waitlist entry")

		return fmt.Errorf("failed to deactivate waitlist entry: %w", err)
	}

	return nil
}

func (s *serviceImpl) load(ctx context.Context, studioID, id string) (model.Entry, error) {
	entry, err := s.repo.Get(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("waitlist_id", id).Msg("failed to get waitlist entry")

		return entry, fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	if entry.ID == constant.Empty {
		return entry, failure.NotFound("waitlist entry not found") // nolint:wrapcheck
	}

	return entry, nil
}
