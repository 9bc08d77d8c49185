package router

import (
	"salon/internal/handlers/appointment"
	"salon/internal/handlers/availability"
	"salon/internal/handlers/waitlist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Appointment  appointment.Handler
	Availability availability.Handler
	Waitlist     waitlist.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
		r.DomainHandlers.Waitlist.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
