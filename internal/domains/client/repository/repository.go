package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/client/model"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"
)

type Client interface {
	Get(ctx context.Context, studioID, id string) (model.Client, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Client]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Client {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Client](model.EntityName, model.TableName, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) Get(ctx context.Context, studioID, id string) (model.Client, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".client.Get")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	client, err := r.Repository.Get(ctx, filter)
	if err != nil {
		return client, fmt.Errorf("failed to get client: %w", err)
	}

	return client, nil
}
