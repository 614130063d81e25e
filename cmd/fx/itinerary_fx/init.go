package itinerary_fx

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"vibego/internal/api/controllers"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(
		ProvideGenerationClient,
		ProvideProfileService,
		ProvidePromptService,
		ProvideItineraryService,
		ProvideItineraryController,
	),
	fx.Invoke(registerClientLifecycle),
)

func registerClientLifecycle(lc fx.Lifecycle, client utils.GenerationClientInterface) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}

// GenerationConfig holds configuration for the generative model client.
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideGenerationClient creates a generation client based on environment variables.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	client, err := utils.NewGenerationClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	return client, nil
}

func ProvideProfileService() services.ProfileServiceInterface {
	return services.NewProfileService()
}

func ProvidePromptService() services.PromptServiceInterface {
	return services.NewPromptService()
}

func ProvideItineraryService(
	profileService services.ProfileServiceInterface,
	promptService services.PromptServiceInterface,
	llmClient utils.GenerationClientInterface,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(profileService, promptService, llmClient)
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
	regenService services.RegenServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService, regenService)
}

func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("LLM_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
