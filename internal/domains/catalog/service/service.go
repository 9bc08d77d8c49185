package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Catalog=MockCatalogService

import (
	"context"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/repository"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetService = "catalog:service"
)

type Catalog interface {
	GetService(ctx context.Context, studioID, id string) (model.BookableService, error)
}

type serviceImpl struct {
	repo  repository.Catalog
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Catalog, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Catalog {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetService loads a service with its buffer. Inactive services cannot be booked.
func (s *serviceImpl) GetService(ctx context.Context, studioID, id string) (res model.BookableService, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetService")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetService, studioID, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err != nil {
		res, err = s.load(ctx, studioID, id)
		if err != nil {
			return res, err
		}

		if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}

	if !res.IsActive {
		return res, failure.BadRequestFromString("service is not active") // nolint:wrapcheck
	}

	if res.DurationMinutes <= 0 {
		return res, failure.BadRequestFromString("service duration must be positive") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) load(ctx context.Context, studioID, id string) (res model.BookableService, err error) {
	service, err := s.repo.GetService(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("service_id", id).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	buffer, err := s.repo.FindBuffer(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("service_id", id).Msg("failed to get service buffer")

		return res, fmt.Errorf("failed to get service buffer: %w", err)
	}

	res.Service = service
	res.Buffer = model.ServiceBuffer{ServiceID: id}

	if buffer != nil {
		res.Buffer = *buffer
	}

	return res, nil
}
