package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/internal/domains/catalog/model"
	"salon/shared"
	"salon/shared/constant"
	gDto "salon/shared/dto"
	gRepo "salon/shared/repository"
)

type Catalog interface {
	GetService(ctx context.Context, studioID, id string) (model.Service, error)
	FindBuffer(ctx context.Context, serviceID string) (*model.ServiceBuffer, error)
}

type repositoryImpl struct {
	services gRepo.Repository[model.Service]
	buffers  gRepo.Repository[model.ServiceBuffer]
	otel     otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Catalog {
	return &repositoryImpl{
		services: gRepo.NewRepository[model.Service](model.EntityName, model.TableName, db, otel),
		buffers:  gRepo.NewRepository[model.ServiceBuffer](model.BufferEntityName, model.BufferTableName, db, otel),
		otel:     otel,
	}
}

func (r *repositoryImpl) GetService(ctx context.Context, studioID, id string) (model.Service, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.GetService")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldStudioID, Value: studioID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	service, err := r.services.Get(ctx, filter)
	if err != nil {
		return service, fmt.Errorf("failed to get service: %w", err)
	}

	return service, nil
}

// FindBuffer returns nil when the service has no buffer row.
func (r *repositoryImpl) FindBuffer(ctx context.Context, serviceID string) (*model.ServiceBuffer, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".catalog.FindBuffer")
	defer scope.End()

	buffer, err := r.buffers.Get(ctx, shared.FilterByID(serviceID, model.FieldBufferServiceID, model.BufferTableName))
	if err != nil {
		return nil, fmt.Errorf("failed to get service buffer: %w", err)
	}

	if buffer.ServiceID == constant.Empty {
		return nil, nil
	}

	return &buffer, nil
}
