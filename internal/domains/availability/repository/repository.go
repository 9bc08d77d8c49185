package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/availability/model"
	"salon/shared/clock"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"
	"time"
)

type Availability interface {
	FindRules(ctx context.Context, studioID string, scope model.Scope) ([]model.AvailabilityRule, error)
	ListRules(ctx context.Context, studioID, teamMemberID string) ([]model.AvailabilityRule, error)
	GetRule(ctx context.Context, studioID, id string) (model.AvailabilityRule, error)
	InsertRule(ctx context.Context, rule model.AvailabilityRule) error
	DeleteRule(ctx context.Context, studioID, id string) error

	FindBlockedTimes(ctx context.Context, studioID string, from, to time.Time, scope model.Scope) ([]model.BlockedTime, error)
	ListBlockedTimes(ctx context.Context, studioID string, from, to time.Time) ([]model.BlockedTime, error)
	GetBlockedTime(ctx context.Context, studioID, id string) (model.BlockedTime, error)
	InsertBlockedTime(ctx context.Context, block model.BlockedTime) error
	DeleteBlockedTime(ctx context.Context, studioID, id string) error
}

type repositoryImpl struct {
	rules  gRepo.Repository[model.AvailabilityRule]
	blocks gRepo.Repository[model.BlockedTime]
	otel   otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		rules:  gRepo.NewRepository[model.AvailabilityRule](model.RuleEntityName, model.RuleTableName, db, otel),
		blocks: gRepo.NewRepository[model.BlockedTime](model.BlockEntityName, model.BlockTableName, db, otel),
		otel:   otel,
	}
}

func byStudioAndID(table, studioField, idField, studioID, id string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: studioField, Value: studioID, Operator: gDto.FilterOperatorEq, Table: table},
			gDto.Filter{Field: idField, Value: id, Operator: gDto.FilterOperatorEq, Table: table},
		},
	}
}

// FindRules returns every rule of the studio whose scope fields are unset or equal to scope's.
func (r *repositoryImpl) FindRules(ctx context.Context, studioID string, scope model.Scope) ([]model.AvailabilityRule, error) {
	ctx, otelScope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.FindRules")
	defer otelScope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRuleStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.RuleTableName},
			gDto.NullOrEq(model.RuleTableName, model.FieldRuleTeamMemberID, scope.TeamMemberID),
			gDto.NullOrEq(model.RuleTableName, model.FieldRuleLocationID, scope.LocationID),
			gDto.NullOrEq(model.RuleTableName, model.FieldRuleServiceID, scope.ServiceID),
		},
	}

	rules, err := r.rules.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find availability rules: %w", err)
	}

	return rules, nil
}

func (r *repositoryImpl) ListRules(ctx context.Context, studioID, teamMemberID string) ([]model.AvailabilityRule, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ListRules")
	defer scope.End()

	filters := []any{
		gDto.Filter{Field: model.FieldRuleStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.RuleTableName},
	}

	if teamMemberID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldRuleTeamMemberID, Value: teamMemberID, Operator: gDto.FilterOperatorEq, Table: model.RuleTableName})
	}

	params := gDto.QueryParams{SortBy: model.FieldRuleDayOfWeek + ", " + model.FieldRuleStartTime, SortDir: gDto.SortDirAsc}

	rules, err := r.rules.GetAll(ctx, params, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("failed to list availability rules: %w", err)
	}

	return rules, nil
}

func (r *repositoryImpl) GetRule(ctx context.Context, studioID, id string) (model.AvailabilityRule, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GetRule")
	defer scope.End()

	rule, err := r.rules.Get(ctx, byStudioAndID(model.RuleTableName, model.FieldRuleStudioID, model.FieldRuleID, studioID, id))
	if err != nil {
		return rule, fmt.Errorf("failed to get availability rule: %w", err)
	}

	return rule, nil
}

func (r *repositoryImpl) InsertRule(ctx context.Context, rule model.AvailabilityRule) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.InsertRule")
	defer scope.End()

	if err := r.rules.Insert(ctx, rule); err != nil {
		return fmt.Errorf("failed to insert availability rule: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteRule(ctx context.Context, studioID, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.DeleteRule")
	defer scope.End()

	if err := r.rules.Delete(ctx, byStudioAndID(model.RuleTableName, model.FieldRuleStudioID, model.FieldRuleID, studioID, id)); err != nil {
		return fmt.Errorf("failed to delete availability rule: %w", err)
	}

	return nil
}

// FindBlockedTimes returns blocks of the studio that may touch [from, to] for scope.
// Recurring blocks are returned until their recurrence ends; the caller expands them.
func (r *repositoryImpl) FindBlockedTimes(ctx context.Context, studioID string, from, to time.Time, scope model.Scope) ([]model.BlockedTime, error) {
	ctx, otelScope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.FindBlockedTimes")
	defer otelScope.End()

	filter := blockRange(studioID, from, to)
	filter.Filters = append(filter.Filters,
		gDto.NullOrEq(model.BlockTableName, model.FieldBlockTeamMemberID, scope.TeamMemberID),
		gDto.NullOrEq(model.BlockTableName, model.FieldBlockLocationID, scope.LocationID),
	)

	blocks, err := r.blocks.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find blocked times: %w", err)
	}

	return blocks, nil
}

func (r *repositoryImpl) ListBlockedTimes(ctx context.Context, studioID string, from, to time.Time) ([]model.BlockedTime, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.ListBlockedTimes")
	defer scope.End()

	params := gDto.QueryParams{SortBy: model.FieldBlockStartDate, SortDir: gDto.SortDirAsc}

	blocks, err := r.blocks.GetAll(ctx, params, blockRange(studioID, from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to list blocked times: %w", err)
	}

	return blocks, nil
}

func (r *repositoryImpl) GetBlockedTime(ctx context.Context, studioID, id string) (model.BlockedTime, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.GetBlockedTime")
	defer scope.End()

	block, err := r.blocks.Get(ctx, byStudioAndID(model.BlockTableName, model.FieldBlockStudioID, model.FieldBlockID, studioID, id))
	if err != nil {
		return block, fmt.Errorf("failed to get blocked time: %w", err)
	}

	return block, nil
}

func (r *repositoryImpl) InsertBlockedTime(ctx context.Context, block model.BlockedTime) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.InsertBlockedTime")
	defer scope.End()

	if err := r.blocks.Insert(ctx, block); err != nil {
		return fmt.Errorf("failed to insert blocked time: %w", err)
	}

	return nil
}

func (r *repositoryImpl) DeleteBlockedTime(ctx context.Context, studioID, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".availability.DeleteBlockedTime")
	defer scope.End()

	if err := r.blocks.Delete(ctx, byStudioAndID(model.BlockTableName, model.FieldBlockStudioID, model.FieldBlockID, studioID, id)); err != nil {
		return fmt.Errorf("failed to delete blocked time: %w", err)
	}

	return nil
}

// blockRange matches blocks starting by to that either end on or after from, or
// keep recurring past from.
func blockRange(studioID string, from, to time.Time) gDto.FilterGroup {
	stillRecurring := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBlockRecurrence, Value: string(model.RecurrenceNone), Operator: gDto.FilterOperatorNotEq, Table: model.BlockTableName},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{Field: model.FieldBlockRecurrenceUntil, Operator: gDto.FilterIsNull, Table: model.BlockTableName},
					gDto.Filter{
						ArgName: "until_from", Field: model.FieldBlockRecurrenceUntil, Value: clock.DateOf(from),
						Operator: gDto.FilterOperatorGreaterEq, Table: model.BlockTableName,
					},
				},
			},
		},
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBlockStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.BlockTableName},
			gDto.Filter{
				ArgName: "range_to", Field: model.FieldBlockStartDate, Value: clock.DateOf(to),
				Operator: gDto.FilterOperatorLessEq, Table: model.BlockTableName,
			},
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName: "range_from", Field: model.FieldBlockEndDate, Value: clock.DateOf(from),
						Operator: gDto.FilterOperatorGreaterEq, Table: model.BlockTableName,
					},
					stillRecurring,
				},
			},
		},
	}
}
