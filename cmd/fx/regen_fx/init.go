package regen_fx

import (
	"go.uber.org/fx"

	"vibego/internal/services"
	mem "vibego/pkg/memcache"
)

var Module = fx.Provide(
	provideSessionStore,
	provideRegenService,
)

func provideSessionStore() mem.SessionStore {
	return mem.NewSessions()
}

func provideRegenService(
	sessions mem.SessionStore,
	profileService services.ProfileServiceInterface,
	itineraryService services.ItineraryServiceInterface,
) services.RegenServiceInterface {
	return services.NewRegenService(sessions, profileService, itineraryService)
}
