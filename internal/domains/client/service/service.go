package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Client=MockClientService

import (
	"context"
	"fmt"
	"salon/infras/otel"
	"salon/internal/domains/client/model"
	"salon/internal/domains/client/repository"
	"salon/shared/constant"
	"salon/shared/failure"

	"github.com/rs/zerolog/log"
)

type Client interface {
	Get(ctx context.Context, studioID, id string) (model.Client, error)
}

type serviceImpl struct {
	repo repository.Client
	otel otel.Otel
}

func New(repo repository.Client, otel otel.Otel) Client {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, studioID, id string) (res model.Client, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetClient")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.Get(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("client_id", id).Msg("failed to get client")

		return res, fmt.Errorf("failed to get client: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("client not found") // nolint:wrapcheck
	}

	return res, nil
}
