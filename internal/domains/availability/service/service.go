package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Availability=MockAvailabilityService

import (
	"context"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/postgres"
	appointmentModel "salon/internal/domains/appointment/model"
	appointmentRepo "salon/internal/domains/appointment/repository"
	"salon/internal/domains/availability/engine"
	"salon/internal/domains/availability/model"
	"salon/internal/domains/availability/model/dto"
	"salon/internal/domains/availability/repository"
	catalogService "salon/internal/domains/catalog/service"
	studioModel "salon/internal/domains/studio/model"
	studioService "salon/internal/domains/studio/service"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/clock"
	"salon/shared/constant"
	"salon/shared/failure"
	"salon/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheSlots = "availability:slots"
)

// SlotCheck is a concrete appointment time to validate before it is written.
type SlotCheck struct {
	TeamMemberID         string
	LocationID           string
	ExcludeAppointmentID string
	Date                 time.Time
	Start                clock.TimeOfDay
	Duration             int
	SetupMinutes         int
	CleanupMinutes       int
	TravelMinutes        int
	ServiceID            string
	// EnforceAdvance rejects starts before the studio's minimum advance cutoff.
	EnforceAdvance bool
}

type Availability interface {
	OpenIntervals(ctx context.Context, studioID string, scope model.Scope, date time.Time) ([]clock.Interval, error)
	HasConflict(ctx context.Context, studioID string, query dto.ConflictQuery) (dto.ConflictResponse, error)
	GenerateSlots(ctx context.Context, studioID string, query dto.SlotQuery) ([]model.Slot, error)
	ValidateSlot(ctx context.Context, studioID string, check SlotCheck) error
	InvalidateSlots(ctx context.Context, studioID string)

	CreateRule(ctx context.Context, studioID string, req dto.CreateRuleRequest, actorID string) (model.AvailabilityRule, error)
	ListRules(ctx context.Context, studioID, teamMemberID string) ([]model.AvailabilityRule, error)
	DeleteRule(ctx context.Context, studioID, id string) error

	CreateBlockedTime(ctx context.Context, studioID string, req dto.CreateBlockedTimeRequest, actorID string) (model.BlockedTime, error)
	ListBlockedTimes(ctx context.Context, studioID string, from, to time.Time) ([]model.BlockedTime, error)
	DeleteBlockedTime(ctx context.Context, studioID, id string) error
}

type serviceImpl struct {
	repo         repository.Availability
	appointments appointmentRepo.Appointment
	studios      studioService.Studio
	catalog      catalogService.Catalog
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Availability,
	appointments appointmentRepo.Appointment,
	studios studioService.Studio,
	catalog catalogService.Catalog,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Availability {
	return &serviceImpl{
		repo:         repo,
		appointments: appointments,
		studios:      studios,
		catalog:      catalog,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// OpenIntervals evaluates rules and blocked times for one scope and date.
func (s *serviceImpl) OpenIntervals(ctx context.Context, studioID string, scope model.Scope, date time.Time) (res []clock.Interval, err error) {
	ctx, otelScope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".OpenIntervals")
	defer otelScope.End()
	defer otelScope.TraceIfError(&err)

	rules, err := s.repo.FindRules(ctx, studioID, scope)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to load availability rules")

		return nil, fmt.Errorf("failed to load availability rules: %w", err)
	}

	blocks, err := s.repo.FindBlockedTimes(ctx, studioID, date, date, scope)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to load blocked times")

		return nil, fmt.Errorf("failed to load blocked times: %w", err)
	}

	return engine.OpenIntervals(date, scope, rules, blocks), nil
}

func (s *serviceImpl) HasConflict(ctx context.Context, studioID string, query dto.ConflictQuery) (res dto.ConflictResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".HasConflict")
	defer scope.End()
	defer scope.TraceIfError(&err)

	date, err := clock.ParseDate(query.Date)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	start, err := clock.ParseTimeOfDay(query.StartTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err := clock.ParseTimeOfDay(query.EndTime)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = clock.DurationMinutes(start, end); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	candidate := engine.Occupancy{
		AppointmentID: query.ExcludeAppointmentID,
		LocationID:    query.LocationID,
		Service:       clock.Interval{Start: start, End: end},
	}

	if query.ServiceID != constant.Empty {
		service, err := s.catalog.GetService(ctx, studioID, query.ServiceID)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		candidate.SetupMinutes = service.Buffer.SetupMinutes
		candidate.CleanupMinutes = service.Buffer.CleanupMinutes
		candidate.TravelMinutes = service.Buffer.TravelMinutes
	}

	if candidate.LocationID == constant.Empty {
		location, err := s.studios.ResolveLocation(ctx, studioID, constant.Empty)
		if err != nil {
			return res, err //nolint:wrapcheck
		}

		candidate.LocationID = location.ID
	}

	busy, err := s.busy(ctx, studioID, query.TeamMemberID, date)
	if err != nil {
		return res, err
	}

	if occ, found := engine.FirstConflict(candidate, busy); found {
		res.Conflict = true
		res.ConflictingAppointmentID = occ.AppointmentID
	}

	return res, nil
}

// ValidateSlot checks that a concrete appointment time is inside availability and
// free of other appointments. The repository re-checks the overlap when it commits.
func (s *serviceImpl) ValidateSlot(ctx context.Context, studioID string, check SlotCheck) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ValidateSlot")
	defer scope.End()
	defer scope.TraceIfError(&err)

	end, err := clock.AddMinutes(check.Start, check.Duration)
	if err != nil {
		return failure.BadRequestFromString("appointment must end on the day it starts") // nolint:wrapcheck
	}

	windowStart, errBefore := clock.AddMinutes(check.Start, -check.SetupMinutes)
	windowEnd, errAfter := clock.AddMinutes(end, check.CleanupMinutes)

	if errBefore != nil || errAfter != nil {
		return failure.BadRequestFromString("appointment buffers must stay within the day") // nolint:wrapcheck
	}

	if check.EnforceAdvance {
		studio, err := s.studios.GetStudio(ctx, studioID)
		if err != nil {
			return err //nolint:wrapcheck
		}

		earliest, ok := engine.NotBefore(check.Date, cutoff(studio))
		if !ok || check.Start < earliest {
			return failure.BadRequestFromString("appointment starts too soon to be booked") // nolint:wrapcheck
		}
	}

	open, err := s.OpenIntervals(ctx, studioID, model.Scope{
		TeamMemberID: check.TeamMemberID,
		LocationID:   check.LocationID,
		ServiceID:    check.ServiceID,
	}, check.Date)
	if err != nil {
		return err
	}

	if !clock.Within(open, clock.Interval{Start: windowStart, End: windowEnd}) {
		return failure.Conflict("team member is not available at the requested time") // nolint:wrapcheck
	}

	busy, err := s.busy(ctx, studioID, check.TeamMemberID, check.Date)
	if err != nil {
		return err
	}

	candidate := engine.Occupancy{
		AppointmentID:  check.ExcludeAppointmentID,
		LocationID:     check.LocationID,
		Service:        clock.Interval{Start: check.Start, End: end},
		SetupMinutes:   check.SetupMinutes,
		CleanupMinutes: check.CleanupMinutes,
		TravelMinutes:  check.TravelMinutes,
	}

	if _, found := engine.FirstConflict(candidate, busy); found {
		return failure.SlotUnavailableError
	}

	return nil
}

// GenerateSlots lists bookable starts for a service over a date range. The grid
// without the advance cutoff is cached; the cutoff is applied on every read.
func (s *serviceImpl) GenerateSlots(ctx context.Context, studioID string, query dto.SlotQuery) (res []model.Slot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateSlots")
	defer scope.End()
	defer scope.TraceIfError(&err)

	from, to, err := s.dateRange(query.StartDate, query.EndDate)
	if err != nil {
		return nil, err
	}

	if query.StepMinutes <= 0 {
		query.StepMinutes = s.cfg.Scheduling.DefaultStepMinutes
	}

	studio, err := s.studios.GetStudio(ctx, studioID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheSlots, studioID), query)

	var cached []model.Slot
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		scope.SetAttribute("cache.hit", true)

		return afterCutoff(cached, cutoff(studio)), nil
	}

	service, err := s.catalog.GetService(ctx, studioID, query.ServiceID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	location, err := s.studios.ResolveLocation(ctx, studioID, query.LocationID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	members, err := s.studios.ResolveTeamMembers(ctx, studioID, query.TeamMemberID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	appointments, err := s.appointments.FindByRange(ctx, studioID, appointmentModel.Filter{
		From:         from,
		To:           to,
		Statuses:     appointmentModel.ActiveStatuses,
		TeamMemberID: query.TeamMemberID,
	})
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to load appointments for slots")

		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	busy := groupByMemberAndDate(appointments)
	res = []model.Slot{}

	for _, member := range members {
		memberSlots, err := s.memberSlots(ctx, studioID, member, location, service.ID, from, to, busy, engine.SlotRequest{
			Duration:       service.DurationMinutes,
			SetupMinutes:   service.Buffer.SetupMinutes,
			CleanupMinutes: service.Buffer.CleanupMinutes,
			TravelMinutes:  service.Buffer.TravelMinutes,
			StepMinutes:    query.StepMinutes,
		})
		if err != nil {
			return nil, err
		}

		res = append(res, memberSlots...)
	}

	engine.SortSlots(res)
	scope.SetAttributes(map[string]any{"cache.hit": false, "slots.count": len(res)})

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Scheduling.SlotCacheTTLSeconds); err != nil {
		log.Error().Err(err).Msg("failed to save slots to cache")
	}

	return afterCutoff(res, cutoff(studio)), nil
}

func (s *serviceImpl) memberSlots(
	ctx context.Context,
	studioID string,
	member studioModel.TeamMember,
	location studioModel.Location,
	serviceID string,
	from, to time.Time,
	busy map[string][]engine.Occupancy,
	base engine.SlotRequest,
) ([]model.Slot, error) {
	scope := model.Scope{TeamMemberID: member.ID, LocationID: location.ID, ServiceID: serviceID}

	rules, err := s.repo.FindRules(ctx, studioID, scope)
	if err != nil {
		log.Error().Err(err).Str("team_member_id", member.ID).Msg("failed to load availability rules")

		return nil, fmt.Errorf("failed to load availability rules: %w", err)
	}

	blocks, err := s.repo.FindBlockedTimes(ctx, studioID, from, to, scope)
	if err != nil {
		log.Error().Err(err).Str("team_member_id", member.ID).Msg("failed to load blocked times")

		return nil, fmt.Errorf("failed to load blocked times: %w", err)
	}

	res := []model.Slot{}

	for _, date := range clock.Dates(from, to) {
		req := base
		req.Date = date
		req.TeamMemberID = member.ID
		req.LocationID = location.ID
		req.ServiceID = serviceID
		req.Open = engine.OpenIntervals(date, scope, rules, blocks)
		req.Busy = busy[busyKey(member.ID, date)]

		res = append(res, engine.GenerateSlots(req)...)
	}

	return res, nil
}

func (s *serviceImpl) InvalidateSlots(ctx context.Context, studioID string) {
	shared.InvalidateCaches(ctx, s.cache, shared.BuildCacheKey(cacheSlots, studioID))
}

func (s *serviceImpl) CreateRule(ctx context.Context, studioID string, req dto.CreateRuleRequest, actorID string) (res model.AvailabilityRule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateRule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rule := req.ToModel(studioID, actorID)

	if !rule.StartTime.Before(rule.EndTime) {
		return res, failure.BadRequestFromString("rule start time must be before its end time") // nolint:wrapcheck
	}

	if rule.EffectiveFrom != nil && rule.EffectiveUntil != nil && rule.EffectiveUntil.Before(*rule.EffectiveFrom) {
		return res, failure.BadRequestFromString("rule effective range is reversed") // nolint:wrapcheck
	}

	if err = s.repo.InsertRule(ctx, rule); err != nil {
		if postgres.ErrorCode(err) == constant.PqErrorCodeFkViolation {
			return res, failure.BadRequestFromString("rule references a team member, location or service that does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to create availability rule")

		return res, fmt.Errorf("failed to create availability rule: %w", err)
	}

	s.InvalidateSlots(ctx, studioID)

	return rule, nil
}

func (s *serviceImpl) ListRules(ctx context.Context, studioID, teamMemberID string) (res []model.AvailabilityRule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListRules")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.ListRules(ctx, studioID, teamMemberID)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to list availability rules")

		return nil, fmt.Errorf("failed to list availability rules: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) DeleteRule(ctx context.Context, studioID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteRule")
	defer scope.End()
	defer scope.TraceIfError(&err)

	rule, err := s.repo.GetRule(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("rule_id", id).Msg("failed to get availability rule")

		return fmt.Errorf("failed to get availability rule: %w", err)
	}

	if rule.ID == constant.Empty {
		return failure.NotFound("availability rule not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteRule(ctx, studioID, id); err != nil {
		log.Error().Err(err).Str("rule_id", id).Msg("failed to delete availability rule")

		return fmt.Errorf("failed to delete availability rule: %w", err)
	}

	s.InvalidateSlots(ctx, studioID)

	return nil
}

func (s *serviceImpl) CreateBlockedTime(ctx context.Context, studioID string, req dto.CreateBlockedTimeRequest, actorID string) (res model.BlockedTime, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateBlockedTime")
	defer scope.End()
	defer scope.TraceIfError(&err)

	block := req.ToModel(studioID, actorID)

	if err = validateBlock(block); err != nil {
		return res, err
	}

	if err = s.repo.InsertBlockedTime(ctx, block); err != nil {
		if postgres.ErrorCode(err) == constant.PqErrorCodeFkViolation {
			return res, failure.BadRequestFromString("blocked time references a team member or location that does not exist") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to create blocked time")

		return res, fmt.Errorf("failed to create blocked time: %w", err)
	}

	s.InvalidateSlots(ctx, studioID)

	return block, nil
}

func (s *serviceImpl) ListBlockedTimes(ctx context.Context, studioID string, from, to time.Time) (res []model.BlockedTime, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListBlockedTimes")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if to.Before(from) {
		return nil, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	res, err = s.repo.ListBlockedTimes(ctx, studioID, from, to)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to list blocked times")

		return nil, fmt.Errorf("failed to list blocked times: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) DeleteBlockedTime(ctx context.Context, studioID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteBlockedTime")
	defer scope.End()
	defer scope.TraceIfError(&err)

	block, err := s.repo.GetBlockedTime(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("blocked_time_id", id).Msg("failed to get blocked time")

		return fmt.Errorf("failed to get blocked time: %w", err)
	}

	if block.ID == constant.Empty {
		return failure.NotFound("blocked time not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteBlockedTime(ctx, studioID, id); err != nil {
		log.Error().Err(err).Str("blocked_time_id", id).Msg("failed to delete blocked time")

		return fmt.Errorf("failed to delete blocked time: %w", err)
	}

	s.InvalidateSlots(ctx, studioID)

	return nil
}

func (s *serviceImpl) busy(ctx context.Context, studioID, teamMemberID string, date time.Time) ([]engine.Occupancy, error) {
	appointments, err := s.appointments.FindByRange(ctx, studioID, appointmentModel.Filter{
		From:         date,
		To:           date,
		Statuses:     appointmentModel.ActiveStatuses,
		TeamMemberID: teamMemberID,
	})
	if err != nil {
		log.Error().Err(err).Str("team_member_id", teamMemberID).Msg("failed to load appointments")

		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	return appointmentModel.Occupancies(appointments), nil
}

func (s *serviceImpl) dateRange(start, end string) (from, to time.Time, err error) {
	from, err = clock.ParseDate(start)
	if err != nil {
		return from, to, failure.BadRequest(err) // nolint:wrapcheck
	}

	to, err = clock.ParseDate(end)
	if err != nil {
		return from, to, failure.BadRequest(err) // nolint:wrapcheck
	}

	if to.Before(from) {
		return from, to, failure.BadRequestFromString("end date must not be before start date") // nolint:wrapcheck
	}

	if days := clock.DaysBetween(from, to); days > s.cfg.Scheduling.MaxRangeDays {
		return from, to, failure.BadRequestf("date range may span at most %d days", s.cfg.Scheduling.MaxRangeDays) // nolint:wrapcheck
	}

	return from, to, nil
}

func validateBlock(block model.BlockedTime) error {
	if block.EndDate.Before(block.StartDate) {
		return failure.BadRequestFromString("blocked time ends before it starts") // nolint:wrapcheck
	}

	if !block.IsAllDay {
		if !block.StartTime.Valid || !block.EndTime.Valid {
			return failure.BadRequestFromString("start and end time are required unless the block is all day") // nolint:wrapcheck
		}

		if block.SpanDays() == 0 && !block.StartTime.Time.Before(block.EndTime.Time) {
			return failure.BadRequestFromString("blocked time must end after it starts") // nolint:wrapcheck
		}
	}

	if period := block.Recurrence.PeriodDays(); period > 0 {
		if block.SpanDays() >= period {
			return failure.BadRequestFromString("a recurring block must be shorter than its recurrence period") // nolint:wrapcheck
		}

		if block.RecurrenceUntil != nil && block.RecurrenceUntil.Before(block.StartDate) {
			return failure.BadRequestFromString("recurrence ends before the block starts") // nolint:wrapcheck
		}
	}

	return nil
}

// cutoff is the earliest instant a new appointment may start, in studio local time.
func cutoff(studio studioModel.Studio) time.Time {
	return timezone.NowIn(studio.Timezone).Add(time.Duration(studio.MinAdvanceMinutes) * time.Minute)
}

func afterCutoff(slots []model.Slot, cutoff time.Time) []model.Slot {
	res := make([]model.Slot, 0, len(slots))

	for _, slot := range slots {
		earliest, ok := engine.NotBefore(slot.Date, cutoff)
		if ok && slot.Start >= earliest {
			res = append(res, slot)
		}
	}

	return res
}

func busyKey(teamMemberID string, date time.Time) string {
	return teamMemberID + "|" + clock.FormatDate(date)
}

func groupByMemberAndDate(appointments []appointmentModel.Appointment) map[string][]engine.Occupancy {
	res := map[string][]engine.Occupancy{}

	for _, a := range appointments {
		if !a.Status.Active() {
			continue
		}

		key := busyKey(a.TeamMemberID, a.AppointmentDate)
		res[key] = append(res[key], a.Occupancy())
	}

	return res
}
