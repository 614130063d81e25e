package geocode_fx

import (
	"log"
	"os"

	"go.uber.org/fx"

	"vibego/internal/api/controllers"
	"vibego/internal/services"
)

var Module = fx.Provide(
	provideGeocodeService,
	provideGeocodeController,
)

func provideGeocodeService() services.GeocodeServiceInterface {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		log.Println("GOOGLE_MAPS_API_KEY is not set; geocode lookups will fail")
	}
	return services.NewGoogleGeocodeService(apiKey)
}

func provideGeocodeController(geocodeService services.GeocodeServiceInterface) *controllers.GeocodeController {
	return controllers.NewGeocodeController(geocodeService)
}
