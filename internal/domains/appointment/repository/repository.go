package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/appointment/model"
	"salon/internal/domains/availability/engine"
	clientModel "salon/internal/domains/client/model"
	"salon/shared/clock"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	gRepo "salon/shared/repository"

	"github.com/cespare/xxhash/v2"
	"github.com/jmoiron/sqlx"
)

const (
	sortByDateAndStart = model.FieldAppointmentDate + ", " + model.FieldStartTime
)

// Appointment persists appointments and their history. Every write that changes an
// appointment appends its history row in the same transaction.
type Appointment interface {
	Get(ctx context.Context, studioID, id string) (model.Appointment, error)
	FindByRange(ctx context.Context, studioID string, filter model.Filter) ([]model.Appointment, error)
	Create(ctx context.Context, appointment model.Appointment, history model.History, newClient *clientModel.Client) error
	Reschedule(ctx context.Context, current, next model.Appointment, history model.History) error
	Transition(ctx context.Context, current model.Appointment, fields map[string]any, history model.History) error
	UpdateFields(ctx context.Context, current model.Appointment, fields map[string]any, history *model.History) error
	History(ctx context.Context, appointmentID string, params gDto.QueryParams) ([]model.History, error)
}

type repositoryImpl struct {
	db           *postgres.Connection
	appointments gRepo.Repository[model.Appointment]
	history      gRepo.Repository[model.History]
	clients      gRepo.Repository[clientModel.Client]
	otel         otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Appointment {
	return &repositoryImpl{
		db:           db,
		appointments: gRepo.NewRepository[model.Appointment](model.EntityName, model.TableName, db, otel),
		history:      gRepo.NewRepository[model.History](model.HistoryEntityName, model.HistoryTableName, db, otel),
		clients:      gRepo.NewRepository[clientModel.Client](clientModel.EntityName, clientModel.TableName, db, otel),
		otel:         otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, studioID, id string) (model.Appointment, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Get")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	appointment, err := r.appointments.Get(ctx, filter)
	if err != nil {
		return appointment, fmt.Errorf("failed to get appointment: %w", err)
	}

	return appointment, nil
}

func (r *repositoryImpl) FindByRange(ctx context.Context, studioID string, filter model.Filter) ([]model.Appointment, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.FindByRange")
	defer scope.End()

	params := gDto.QueryParams{SortBy: sortByDateAndStart, SortDir: gDto.SortDirAsc}

	appointments, err := r.appointments.GetAll(ctx, params, rangeFilter(studioID, filter))
	if err != nil {
		return nil, fmt.Errorf("failed to find appointments: %w", err)
	}

	return appointments, nil
}

// Create inserts a new appointment once the team member's day has been locked
// and re-checked, so two concurrent bookings cannot both take the same time.
// A client registered by the booking is inserted in the same transaction.
func (r *repositoryImpl) Create(ctx context.Context, appointment model.Appointment, history model.History, newClient *clientModel.Client) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Create")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.claim(ctx, tx, appointment); err != nil {
			return err
		}

		if newClient != nil {
			if err := r.clients.InsertTx(ctx, tx, *newClient); err != nil {
				return err //nolint:wrapcheck
			}
		}

		if err := r.appointments.InsertTx(ctx, tx, appointment); err != nil {
			return err //nolint:wrapcheck
		}

		return r.history.InsertTx(ctx, tx, history) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return translate(err, "failed to create appointment")
	}

	return nil
}

// Reschedule moves current to next in place. The target day is locked and re-checked
// first, and the update only applies if nobody changed the appointment meanwhile.
func (r *repositoryImpl) Reschedule(ctx context.Context, current, next model.Appointment, history model.History) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Reschedule")
	defer scope.End()

	fields := map[string]any{
		model.FieldAppointmentDate: next.AppointmentDate,
		model.FieldStartTime:       next.StartTime,
		model.FieldEndTime:         next.EndTime,
		model.FieldTeamMemberID:    next.TeamMemberID,
		model.FieldLocationID:      next.LocationID,
		model.FieldServiceID:       next.ServiceID,
		"setup_minutes":            next.SetupMinutes,
		"cleanup_minutes":          next.CleanupMinutes,
		"travel_minutes":           next.TravelMinutes,
		"total_price":              next.TotalPrice,
		model.FieldPaymentStatus:   next.PaymentStatus,
		model.FieldStatus:          next.Status,
		constant.FieldModifiedAt:   next.ModifiedAt,
		constant.FieldModifiedBy:   next.ModifiedBy,
	}

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.claim(ctx, tx, next); err != nil {
			return err
		}

		if err := r.update(ctx, tx, current, fields); err != nil {
			return err
		}

		return r.history.InsertTx(ctx, tx, history) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return translate(err, "failed to reschedule appointment")
	}

	return nil
}

// Transition applies a status change together with its history row.
func (r *repositoryImpl) Transition(ctx context.Context, current model.Appointment, fields map[string]any, history model.History) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.Transition")
	defer scope.End()

	return r.UpdateFields(ctx, current, fields, &history)
}

// UpdateFields writes fields if current is still the stored version. History is optional
// for bookkeeping fields that are not visible to the client.
func (r *repositoryImpl) UpdateFields(ctx context.Context, current model.Appointment, fields map[string]any, history *model.History) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.UpdateFields")
	defer scope.End()

	err := r.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := r.update(ctx, tx, current, fields); err != nil {
			return err
		}

		if history == nil {
			return nil
		}

		return r.history.InsertTx(ctx, tx, *history) //nolint:wrapcheck
	})
	if err != nil {
		scope.TraceError(err)

		return translate(err, "failed to update appointment")
	}

	return nil
}

// History pages through the change log oldest first. Sorting is fixed; only paging comes from params.
func (r *repositoryImpl) History(ctx context.Context, appointmentID string, params gDto.QueryParams) ([]model.History, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.History")
	defer scope.End()

	params.SortBy = model.FieldHistoryCreatedAt + " " + gDto.SortDirAsc + ", " + model.FieldHistoryID
	params.SortDir = gDto.SortDirAsc
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldHistoryAppointmentID, Value: appointmentID, Operator: gDto.FilterOperatorEq, Table: model.HistoryTableName},
		},
	}

	history, err := r.history.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment history: %w", err)
	}

	return history, nil
}

// claim serializes writers on one team member's day and re-runs the conflict check
// against what is committed. The exclusion constraint in the schema backs this up.
func (r *repositoryImpl) claim(ctx context.Context, tx *sqlx.Tx, appointment model.Appointment) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.claim")
	defer scope.End()

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", lockKey(appointment)); err != nil {
		return fmt.Errorf("failed to lock team member day: %w", err)
	}

	day := model.Filter{
		From:         appointment.AppointmentDate,
		To:           appointment.AppointmentDate,
		Statuses:     model.ActiveStatuses,
		TeamMemberID: appointment.TeamMemberID,
	}

	existing, err := r.appointments.GetAllTx(ctx, tx, gDto.QueryParams{}, rangeFilter(appointment.StudioID, day))
	if err != nil {
		return fmt.Errorf("failed to reload team member day: %w", err)
	}

	if _, found := engine.FirstConflict(appointment.Occupancy(), model.Occupancies(existing)); found {
		return failure.SlotUnavailableError
	}

	return nil
}

// update is an optimistic write: it matches on the status and version that were read
// and bumps the version.
func (r *repositoryImpl) update(ctx context.Context, tx *sqlx.Tx, current model.Appointment, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".appointment.update")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{ArgName: "where_id", Field: model.FieldID, Value: current.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "where_status", Field: model.FieldStatus, Value: current.Status, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{ArgName: "where_version", Field: model.FieldVersion, Value: current.Version, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	rows, err := r.appointments.UpdateTx(ctx, tx, fields, filter, model.FieldVersion)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if rows == 0 {
		return failure.Conflict("appointment was changed by someone else, reload and try again") // nolint:wrapcheck
	}

	return nil
}

func rangeFilter(studioID string, filter model.Filter) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: model.FieldStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	if !filter.From.IsZero() {
		filters = append(filters, gDto.Filter{
			ArgName: "date_from", Field: model.FieldAppointmentDate, Value: clock.DateOf(filter.From),
			Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName,
		})
	}

	if !filter.To.IsZero() {
		filters = append(filters, gDto.Filter{
			ArgName: "date_to", Field: model.FieldAppointmentDate, Value: clock.DateOf(filter.To),
			Operator: gDto.FilterOperatorLessEq, Table: model.TableName,
		})
	}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			statuses[i] = string(status)
		}

		filters = append(filters, gDto.Filter{Field: model.FieldStatus, Value: statuses, Operator: gDto.FilterOperatorIn, Table: model.TableName})
	}

	if filter.TeamMemberID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldTeamMemberID, Value: filter.TeamMemberID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	if filter.LocationID != "" {
		filters = append(filters, gDto.Filter{Field: model.FieldLocationID, Value: filter.LocationID, Operator: gDto.FilterOperatorEq, Table: model.TableName})
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func lockKey(appointment model.Appointment) int64 {
	key := appointment.StudioID + ":" + appointment.TeamMemberID + ":" + clock.FormatDate(appointment.AppointmentDate)

	return int64(xxhash.Sum64String(key)) //nolint:gosec
}

// translate maps constraint violations onto domain failures.
func translate(err error, msg string) error {
	switch postgres.ErrorCode(err) {
	case constant.PqErrorCodeExclusionViolation:
		return failure.SlotUnavailableError
	case constant.PqErrorCodeFkViolation:
		return failure.BadRequestFromString("appointment references a record that does not exist") // nolint:wrapcheck
	case constant.PqErrorCodeCheckViolation:
		return failure.BadRequestFromString("appointment violates a data constraint") // nolint:wrapcheck
	}

	var fail *failure.Failure
	if errors.As(err, &fail) {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}
