//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/jwt"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/infras/redis"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	"github.com/google/wire"

	appointmentRepository "salon/internal/domains/appointment/repository"
	appointmentService "salon/internal/domains/appointment/service"
	availabilityRepository "salon/internal/domains/availability/repository"
	availabilityService "salon/internal/domains/availability/service"
	catalogRepository "salon/internal/domains/catalog/repository"
	catalogService "salon/internal/domains/catalog/service"
	clientRepository "salon/internal/domains/client/repository"
	clientService "salon/internal/domains/client/service"
	studioRepository "salon/internal/domains/studio/repository"
	studioService "salon/internal/domains/studio/service"
	waitlistRepository "salon/internal/domains/waitlist/repository"
	waitlistService "salon/internal/domains/waitlist/service"

	appointmentHandler "salon/internal/handlers/appointment"
	availabilityHandler "salon/internal/handlers/availability"
	waitlistHandler "salon/internal/handlers/waitlist"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var referenceDomains = wire.NewSet(
	studioRepository.New,
	studioService.New,
	catalogRepository.New,
	catalogService.New,
	clientRepository.New,
	clientService.New,
)

var schedulingDomains = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
	appointmentRepository.New,
	appointmentService.New,
	waitlistRepository.New,
	waitlistService.New,
)

var domains = wire.NewSet(
	referenceDomains,
	schedulingDomains,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	availabilityHandler.New,
	waitlistHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
