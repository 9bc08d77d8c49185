package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/waitlist/model"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	"salon/shared/failure"
	gRepo "salon/shared/repository"
)

const (
	sortForFulfillment = model.FieldPriorityScore + " DESC, " + model.FieldCreatedAt + " ASC, " + model.FieldID
)

type Waitlist interface {
	Get(ctx context.Context, studioID, id string) (model.Entry, error)
	ListActive(ctx context.Context, studioID string, limit int) ([]model.Entry, error)
	FindCandidates(ctx context.Context, studioID string, opening model.Opening) ([]model.Entry, error)
	Insert(ctx context.Context, entry model.Entry) error
	UpdateActive(ctx context.Context, studioID, id string, fields map[string]any) error
}

type repositoryImpl struct {
	entries gRepo.Repository[model.Entry]
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Waitlist {
	return &repositoryImpl{
		entries: gRepo.NewRepository[model.Entry](model.EntityName, model.TableName, db, otel),
		otel:    otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, studioID, id string) (model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.Get")
	defer scope.End()

	entry, err := r.entries.Get(ctx, byStudio(studioID,
		gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	))
	if err != nil {
		return entry, fmt.Errorf("failed to get waitlist entry: %w", err)
	}

	return entry, nil
}

func (r *repositoryImpl) ListActive(ctx context.Context, studioID string, limit int) ([]model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.ListActive")
	defer scope.End()

	params := gDto.QueryParams{Limit: limit, SortBy: sortForFulfillment, SortDir: gDto.SortDirAsc}

	entries, err := r.entries.GetAll(ctx, params, byStudio(studioID, active()))
	if err != nil {
		return nil, fmt.Errorf("failed to list waitlist: %w", err)
	}

	return entries, nil
}

// FindCandidates narrows by the scope preferences; date and time windows are left to the caller.
func (r *repositoryImpl) FindCandidates(ctx context.Context, studioID string, opening model.Opening) ([]model.Entry, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.FindCandidates")
	defer scope.End()

	filter := byStudio(studioID, active())
	filter.Filters = append(filter.Filters,
		gDto.NullOrEq(model.TableName, model.FieldServiceID, opening.ServiceID),
		gDto.NullOrEq(model.TableName, model.FieldLocationID, opening.LocationID),
		gDto.NullOrEq(model.TableName, model.FieldTeamMemberID, opening.TeamMemberID),
	)

	params := gDto.QueryParams{SortBy: sortForFulfillment, SortDir: gDto.SortDirAsc}

	entries, err := r.entries.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find waitlist candidates: %w", err)
	}

	return entries, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, entry model.Entry) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.Insert")
	defer scope.End()

	if err := r.entries.Insert(ctx, entry); err != nil {
		return fmt.Errorf("failed to insert waitlist entry: %w", err)
	}

	return nil
}

// UpdateActive only touches the entry while it is still active. Losing that race is a conflict.
func (r *repositoryImpl) UpdateActive(ctx context.Context, studioID, id string, fields map[string]any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".waitlist.UpdateActive")
	defer scope.End()

	filter := byStudio(studioID,
		gDto.Filter{ArgName: "where_id", Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		active(),
	)

	rows, err := r.entries.Update(ctx, fields, filter)
	if err != nil {
		return fmt.Errorf("failed to update waitlist entry: %w", err)
	}

	if rows == 0 {
		return failure.Conflict("waitlist entry is no longer active") // nolint:wrapcheck
	}

	return nil
}

func active() gDto.Filter {
	return gDto.Filter{ArgName: "where_active", Field: model.FieldIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName}
}

func byStudio(studioID string, extra ...gDto.Filter) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{ArgName: "where_studio_id", Field: model.FieldStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	}

	for _, f := range extra {
		filters = append(filters, f)
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}
