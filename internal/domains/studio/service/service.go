package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Studio=MockStudioService

import (
	"context"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/internal/domains/studio/model"
	"salon/internal/domains/studio/repository"
	"salon/shared"
	"salon/shared/cache"
	"salon/shared/constant"
	"salon/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetStudio = "studio:get"
)

// Studio resolves tenant entities referenced by scheduling requests.
type Studio interface {
	GetStudio(ctx context.Context, id string) (model.Studio, error)
	GetLocation(ctx context.Context, studioID, id string) (model.Location, error)
	ResolveLocation(ctx context.Context, studioID, id string) (model.Location, error)
	GetTeamMember(ctx context.Context, studioID, id string) (model.TeamMember, error)
	ResolveTeamMembers(ctx context.Context, studioID, id string) ([]model.TeamMember, error)
}

type serviceImpl struct {
	repo  repository.Studio
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Studio, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Studio {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// GetStudio is cached; studio settings change rarely.
func (s *serviceImpl) GetStudio(ctx context.Context, id string) (res model.Studio, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStudio")
	defer scope.End()
	defer scope.TraceIfError(&err)

	cacheKey := shared.BuildCacheKey(cacheGetStudio, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.GetStudio(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("studio_id", id).Msg("failed to get studio")

		return res, fmt.Errorf("failed to get studio: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("studio not found") // nolint:wrapcheck
	}

	if err := s.cache.Save(ctx, cacheKey, res, s.cfg.Cache.TTL); err != nil {
		log.Error().Err(err).Msg("failed to save studio to cache")
	}

	return res, nil
}

func (s *serviceImpl) GetLocation(ctx context.Context, studioID, id string) (res model.Location, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLocation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.GetLocation(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("location_id", id).Msg("failed to get location")

		return res, fmt.Errorf("failed to get location: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("location not found") // nolint:wrapcheck
	}

	if !res.IsActive {
		return res, failure.BadRequestFromString("location is not active") // nolint:wrapcheck
	}

	return res, nil
}

// ResolveLocation returns the given location, or the studio's primary one when id is empty.
func (s *serviceImpl) ResolveLocation(ctx context.Context, studioID, id string) (res model.Location, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveLocation")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if id != constant.Empty {
		return s.GetLocation(ctx, studioID, id)
	}

	res, err = s.repo.GetPrimaryLocation(ctx, studioID)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to get primary location")

		return res, fmt.Errorf("failed to get primary location: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("studio has no active primary location") // nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) GetTeamMember(ctx context.Context, studioID, id string) (res model.TeamMember, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetTeamMember")
	defer scope.End()
	defer scope.TraceIfError(&err)

	res, err = s.repo.GetTeamMember(ctx, studioID, id)
	if err != nil {
		log.Error().Err(err).Str("team_member_id", id).Msg("failed to get team member")

		return res, fmt.Errorf("failed to get team member: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("team member not found") // nolint:wrapcheck
	}

	if !res.IsBookable {
		return res, failure.BadRequestFromString("team member is not bookable") // nolint:wrapcheck
	}

	return res, nil
}

// ResolveTeamMembers returns the one requested member, or every bookable member when id is empty.
func (s *serviceImpl) ResolveTeamMembers(ctx context.Context, studioID, id string) (res []model.TeamMember, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveTeamMembers")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if id != constant.Empty {
		member, err := s.GetTeamMember(ctx, studioID, id)
		if err != nil {
			return nil, err
		}

		return []model.TeamMember{member}, nil
	}

	res, err = s.repo.GetBookableTeamMembers(ctx, studioID)
	if err != nil {
		log.Error().Err(err).Str("studio_id", studioID).Msg("failed to get bookable team members")

		return nil, fmt.Errorf("failed to get bookable team members: %w", err)
	}

	return res, nil
}
