package journey_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"vibego/internal/api/controllers"
	"vibego/internal/repositories"
	"vibego/internal/services"
)

var Module = fx.Provide(
	provideJourneyRepo,
	provideJourneyService,
	provideJourneyController,
)

func provideJourneyRepo(db *gorm.DB) repositories.JourneyRepository {
	return repositories.NewJourneyRepository(db)
}

func provideJourneyService(journeyRepo repositories.JourneyRepository) services.JourneyServiceInterface {
	return services.NewJourneyService(journeyRepo)
}

func provideJourneyController(journeyService services.JourneyServiceInterface) *controllers.JourneyController {
	return controllers.NewJourneyController(journeyService)
}
