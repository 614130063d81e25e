package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, raw *request_models.SoulProfile) (*response_models.Itinerary, error)
}

type ItineraryService struct {
	profileService ProfileServiceInterface
	promptService  PromptServiceInterface
	llmClient      utils.GenerationClientInterface
}

func NewItineraryService(
	profileService ProfileServiceInterface,
	promptService PromptServiceInterface,
	llmClient utils.GenerationClientInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		profileService: profileService,
		promptService:  promptService,
		llmClient:      llmClient,
	}
}

// GenerateItinerary runs the full pipeline: normalize profile, compile prompt,
// invoke the model, validate against the schema contract, then enforce the
// structural invariants. An ineligible profile never reaches the model.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, raw *request_models.SoulProfile) (*response_models.Itinerary, error) {
	profile, err := s.profileService.NormalizeSoulProfile(raw)
	if err != nil {
		return nil, err
	}

	prompt := s.promptService.CompileItineraryPrompt(profile)

	rawJSON, err := s.llmClient.GenerateItinerary(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if err := utils.ValidateItineraryJSON(rawJSON); err != nil {
		return nil, err
	}

	var itinerary response_models.Itinerary
	if err := json.Unmarshal([]byte(rawJSON), &itinerary); err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrSchemaViolation, err)
	}

	if err := validateItinerary(&itinerary, profile); err != nil {
		return nil, err
	}

	normalizeItinerary(&itinerary, profile)
	return &itinerary, nil
}

// validateItinerary enforces the structural invariants the prompt asked the
// model to honor. Violations reject the result outright; fabricating days or
// addresses would be worse than an explicit failure.
func validateItinerary(itinerary *response_models.Itinerary, profile *request_models.SoulProfile) error {
	start, _ := utils.ParseISODate(profile.Practical.StartDate)
	end, _ := utils.ParseISODate(profile.Practical.EndDate)
	expected := utils.DaysBetweenInclusive(start, end)

	if len(itinerary.DailyItinerary) != expected {
		return &utils.DayCountMismatchError{Expected: expected, Actual: len(itinerary.DailyItinerary)}
	}

	for _, day := range itinerary.DailyItinerary {
		for i, activity := range day.Activities {
			if strings.TrimSpace(activity.Address) == "" {
				return &utils.MissingAddressError{Day: day.Day, ItemType: "activity", Index: i}
			}
		}
		for i, restaurant := range day.Restaurants {
			if strings.TrimSpace(restaurant.Address) == "" {
				return &utils.MissingAddressError{Day: day.Day, ItemType: "restaurant", Index: i}
			}
		}
	}

	if strings.TrimSpace(itinerary.Destination) == "" {
		return fmt.Errorf("%w: destination is empty", utils.ErrSchemaViolation)
	}

	return nil
}

// normalizeItinerary echoes the caller's practical fields onto the result.
// The budget keeps the representation the profile supplied: a string stays a
// string, a number stays a number, whatever the model answered with.
func normalizeItinerary(itinerary *response_models.Itinerary, profile *request_models.SoulProfile) {
	itinerary.Budget = profile.Practical.Budget
	itinerary.Companions = profile.Practical.Companions
	itinerary.StartDate = profile.Practical.StartDate
	itinerary.EndDate = profile.Practical.EndDate
	itinerary.CreatedAt = utils.FormatRFC3339UTC(time.Now())
}
