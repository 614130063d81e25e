package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vibego/internal/models/db_models"
	"vibego/internal/models/request_models"
	"vibego/internal/models/response_models"
	"vibego/internal/repositories"
	"vibego/pkg/utils"
)

type JourneyServiceInterface interface {
	SaveJourney(ctx context.Context, accountID uuid.UUID, req request_models.SaveJourneyRequest) (string, error)
	ListJourneys(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]response_models.JourneyResponse, error)
	GetJourney(ctx context.Context, accountID uuid.UUID, journeyID string) (*response_models.JourneyDetailResponse, error)
	UpdateCompletion(ctx context.Context, accountID uuid.UUID, journeyID string, items []string) error
	UpdateItinerary(ctx context.Context, accountID uuid.UUID, journeyID string, req request_models.UpdateItineraryRequest) error
	DeleteJourney(ctx context.Context, accountID uuid.UUID, journeyID string) error
}

type JourneyService struct {
	journeyRepo repositories.JourneyRepository
}

func NewJourneyService(journeyRepo repositories.JourneyRepository) JourneyServiceInterface {
	return &JourneyService{journeyRepo: journeyRepo}
}

func (j *JourneyService) SaveJourney(ctx context.Context, accountID uuid.UUID, req request_models.SaveJourneyRequest) (string, error) {
	itinerary, err := decodeItinerary(req.Itinerary)
	if err != nil {
		return "", err
	}

	title := req.Title
	if title == "" {
		title = itinerary.TripTitle
	}

	journey := &db_models.Journey{
		AccountID:      accountID,
		Title:          title,
		Destination:    itinerary.Destination,
		StartDate:      itinerary.StartDate,
		EndDate:        itinerary.EndDate,
		SchemaVersion:  utils.ItinerarySchemaVersion,
		Itinerary:      string(req.Itinerary),
		SoulProfile:    string(req.SoulProfile),
		CompletedItems: req.CompletedItems,
	}

	if err := j.journeyRepo.Insert(ctx, journey); err != nil {
		return "", utils.ErrDatabaseError
	}
	return journey.ID.String(), nil
}

func (j *JourneyService) ListJourneys(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]response_models.JourneyResponse, error) {
	journeys, err := j.journeyRepo.ListByAccount(ctx, accountID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.JourneyResponse, 0, len(journeys))
	for _, journey := range journeys {
		out = append(out, response_models.JourneyResponse{
			ID:             journey.ID.String(),
			Title:          journey.Title,
			Destination:    journey.Destination,
			StartDate:      journey.StartDate,
			EndDate:        journey.EndDate,
			CreatedAt:      utils.FormatRFC3339UTC(timeFromUnix(journey.CreatedAt)),
			CompletedCount: len(journey.CompletedItems),
		})
	}
	return out, nil
}

func (j *JourneyService) GetJourney(ctx context.Context, accountID uuid.UUID, journeyID string) (*response_models.JourneyDetailResponse, error) {
	journey, err := j.journeyRepo.GetByID(ctx, journeyID, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if journey == nil {
		return nil, utils.ErrJourneyNotFound
	}

	return &response_models.JourneyDetailResponse{
		ID:             journey.ID.String(),
		Title:          journey.Title,
		Itinerary:      json.RawMessage(journey.Itinerary),
		SoulProfile:    json.RawMessage(journey.SoulProfile),
		CompletedItems: journey.CompletedItems,
		SchemaVersion:  journey.SchemaVersion,
		CreatedAt:      utils.FormatRFC3339UTC(timeFromUnix(journey.CreatedAt)),
	}, nil
}

func (j *JourneyService) UpdateCompletion(ctx context.Context, accountID uuid.UUID, journeyID string, items []string) error {
	if err := j.journeyRepo.UpdateCompletedItems(ctx, journeyID, accountID, items); err != nil {
		return repoError(err)
	}
	return nil
}

func (j *JourneyService) UpdateItinerary(ctx context.Context, accountID uuid.UUID, journeyID string, req request_models.UpdateItineraryRequest) error {
	itinerary, err := decodeItinerary(req.Itinerary)
	if err != nil {
		return err
	}

	journeyUUID, err := uuid.Parse(journeyID)
	if err != nil {
		return utils.ErrJourneyNotFound
	}

	journey := &db_models.Journey{
		AccountID:     accountID,
		Title:         itinerary.TripTitle,
		Destination:   itinerary.Destination,
		StartDate:     itinerary.StartDate,
		EndDate:       itinerary.EndDate,
		SchemaVersion: utils.ItinerarySchemaVersion,
		Itinerary:     string(req.Itinerary),
		SoulProfile:   string(req.SoulProfile),
	}
	journey.ID = journeyUUID

	if err := j.journeyRepo.UpdateItinerary(ctx, journey); err != nil {
		return repoError(err)
	}
	return nil
}

func (j *JourneyService) DeleteJourney(ctx context.Context, accountID uuid.UUID, journeyID string) error {
	if err := j.journeyRepo.Delete(ctx, journeyID, accountID); err != nil {
		return repoError(err)
	}
	return nil
}

func repoError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrJourneyNotFound
	}
	return utils.ErrDatabaseError
}

func timeFromUnix(sec int64) time.Time {
	if sec <= 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0)
}

func decodeItinerary(raw json.RawMessage) (*response_models.Itinerary, error) {
	var itinerary response_models.Itinerary
	if err := json.Unmarshal(raw, &itinerary); err != nil {
		return nil, fmt.Errorf("%w: itinerary payload is not valid", utils.ErrInvalidInput)
	}
	return &itinerary, nil
}
