package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"vibego/cmd/fx/account_fx"
	"vibego/cmd/fx/db_fx"
	"vibego/cmd/fx/geocode_fx"
	"vibego/cmd/fx/itinerary_fx"
	"vibego/cmd/fx/journey_fx"
	"vibego/cmd/fx/regen_fx"
	"vibego/internal/api/controllers"
	"vibego/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		account_fx.Module,
		itinerary_fx.Module,
		regen_fx.Module,
		journey_fx.Module,
		geocode_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	geocodeController *controllers.GeocodeController,
) *gin.Engine {
	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, itineraryController, journeyController, geocodeController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	accountController *controllers.AccountController,
	itineraryController *controllers.ItineraryController,
	journeyController *controllers.JourneyController,
	geocodeController *controllers.GeocodeController,
) {
	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/generate", itineraryController.GenerateItineraryHandler)
	itineraryGroup.POST("/regenerate", itineraryController.RegenerateItineraryHandler)
	itineraryGroup.DELETE("/sessions/:id", itineraryController.CloseSessionHandler)

	r.GET("/geocode", geocodeController.LookupHandler)

	journeysGroup := r.Group("/journeys")
	journeysGroup.Use(middleware.JWTAuthMiddleware())
	journeysGroup.POST("", journeyController.SaveJourneyHandler)
	journeysGroup.GET("", journeyController.ListJourneysHandler)
	journeysGroup.GET("/:id", journeyController.GetJourneyHandler)
	journeysGroup.PUT("/:id/completion", journeyController.UpdateCompletionHandler)
	journeysGroup.PUT("/:id/itinerary", journeyController.UpdateItineraryHandler)
	journeysGroup.DELETE("/:id", journeyController.DeleteJourneyHandler)
}
