package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/studio/model"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"
)

// Studio reads the tenant directory. Lookups return a zero value when nothing matches.
type Studio interface {
	GetStudio(ctx context.Context, id string) (model.Studio, error)
	GetLocation(ctx context.Context, studioID, id string) (model.Location, error)
	GetPrimaryLocation(ctx context.Context, studioID string) (model.Location, error)
	GetTeamMember(ctx context.Context, studioID, id string) (model.TeamMember, error)
	GetBookableTeamMembers(ctx context.Context, studioID string) ([]model.TeamMember, error)
}

type repositoryImpl struct {
	studios     gRepo.Repository[model.Studio]
	locations   gRepo.Repository[model.Location]
	teamMembers gRepo.Repository[model.TeamMember]
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Studio {
	return &repositoryImpl{
		studios:     gRepo.NewRepository[model.Studio](model.EntityName, model.TableName, db, otel),
		locations:   gRepo.NewRepository[model.Location](model.LocationEntityName, model.LocationTableName, db, otel),
		teamMembers: gRepo.NewRepository[model.TeamMember](model.TeamMemberEntityName, model.TeamMemberTableName, db, otel),
		otel:        otel,
	}
}

func byStudio(studioID, field, table string, extra ...gDto.Filter) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{Field: field, Value: studioID, Operator: gDto.FilterOperatorEq, Table: table},
	}

	for _, f := range extra {
		filters = append(filters, f)
	}

	return gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters}
}

func (r *repositoryImpl) GetStudio(ctx context.Context, id string) (model.Studio, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetStudio")
	defer scope.End()

	studio, err := r.studios.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		return studio, fmt.Errorf("failed to get studio: %w", err)
	}

	return studio, nil
}

func (r *repositoryImpl) GetLocation(ctx context.Context, studioID, id string) (model.Location, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetLocation")
	defer scope.End()

	filter := byStudio(studioID, model.FieldLocationStudioID, model.LocationTableName, gDto.Filter{
		Field: model.FieldLocationID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.LocationTableName,
	})

	location, err := r.locations.Get(ctx, filter)
	if err != nil {
		return location, fmt.Errorf("failed to get location: %w", err)
	}

	return location, nil
}

func (r *repositoryImpl) GetPrimaryLocation(ctx context.Context, studioID string) (model.Location, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetPrimaryLocation")
	defer scope.End()

	filter := byStudio(studioID, model.FieldLocationStudioID, model.LocationTableName,
		gDto.Filter{Field: model.FieldLocationIsPrimary, Value: true, Operator: gDto.FilterOperatorEq, Table: model.LocationTableName},
		gDto.Filter{Field: model.FieldLocationIsActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.LocationTableName},
	)

	location, err := r.locations.Get(ctx, filter)
	if err != nil {
		return location, fmt.Errorf("failed to get primary location: %w", err)
	}

	return location, nil
}

func (r *repositoryImpl) GetTeamMember(ctx context.Context, studioID, id string) (model.TeamMember, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetTeamMember")
	defer scope.End()

	filter := byStudio(studioID, model.FieldTeamMemberStudioID, model.TeamMemberTableName, gDto.Filter{
		Field: model.FieldTeamMemberID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TeamMemberTableName,
	})

	member, err := r.teamMembers.Get(ctx, filter)
	if err != nil {
		return member, fmt.Errorf("failed to get team member: %w", err)
	}

	return member, nil
}

func (r *repositoryImpl) GetBookableTeamMembers(ctx context.Context, studioID string) ([]model.TeamMember, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".studio.GetBookableTeamMembers")
	defer scope.End()

	filter := byStudio(studioID, model.FieldTeamMemberStudioID, model.TeamMemberTableName, gDto.Filter{
		Field: model.FieldTeamMemberIsBookable, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TeamMemberTableName,
	})

	params := gDto.QueryParams{SortBy: model.FieldTeamMemberName, SortDir: gDto.SortDirAsc}

	members, err := r.teamMembers.GetAll(ctx, params, filter)
	if err != nil {
		return members, fmt.Errorf("failed to get bookable team members: %w", err)
	}

	return members, nil
}
