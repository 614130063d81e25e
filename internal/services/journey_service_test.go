package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"vibego/internal/models/db_models"
	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type fakeJourneyRepository struct {
	journeys map[string]*db_models.Journey
}

func newFakeJourneyRepository() *fakeJourneyRepository {
	return &fakeJourneyRepository{journeys: make(map[string]*db_models.Journey)}
}

func (f *fakeJourneyRepository) Insert(ctx context.Context, journey *db_models.Journey) error {
	if journey.ID == uuid.Nil {
		journey.ID = uuid.New()
	}
	journey.CreatedAt = time.Now().Unix()
	f.journeys[journey.ID.String()] = journey
	return nil
}

func (f *fakeJourneyRepository) GetByID(ctx context.Context, journeyID string, accountID uuid.UUID) (*db_models.Journey, error) {
	journey, ok := f.journeys[journeyID]
	if !ok || journey.AccountID != accountID {
		return nil, nil
	}
	return journey, nil
}

func (f *fakeJourneyRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, page int, pageSize int) ([]db_models.Journey, error) {
	var out []db_models.Journey
	for _, journey := range f.journeys {
		if journey.AccountID == accountID {
			out = append(out, *journey)
		}
	}
	return out, nil
}

func (f *fakeJourneyRepository) UpdateCompletedItems(ctx context.Context, journeyID string, accountID uuid.UUID, items []string) error {
	journey, ok := f.journeys[journeyID]
	if !ok || journey.AccountID != accountID {
		return gorm.ErrRecordNotFound
	}
	journey.CompletedItems = pq.StringArray(items)
	return nil
}

func (f *fakeJourneyRepository) UpdateItinerary(ctx context.Context, updated *db_models.Journey) error {
	journey, ok := f.journeys[updated.ID.String()]
	if !ok || journey.AccountID != updated.AccountID {
		return gorm.ErrRecordNotFound
	}
	journey.Title = updated.Title
	journey.Destination = updated.Destination
	journey.StartDate = updated.StartDate
	journey.EndDate = updated.EndDate
	journey.SchemaVersion = updated.SchemaVersion
	journey.Itinerary = updated.Itinerary
	journey.SoulProfile = updated.SoulProfile
	return nil
}

func (f *fakeJourneyRepository) Delete(ctx context.Context, journeyID string, accountID uuid.UUID) error {
	journey, ok := f.journeys[journeyID]
	if !ok || journey.AccountID != accountID {
		return gorm.ErrRecordNotFound
	}
	delete(f.journeys, journeyID)
	return nil
}

func saveTestJourney(t *testing.T, svc JourneyServiceInterface, accountID uuid.UUID) string {
	t.Helper()
	id, err := svc.SaveJourney(context.Background(), accountID, request_models.SaveJourneyRequest{
		Itinerary:      json.RawMessage(rawItineraryJSON(3)),
		SoulProfile:    json.RawMessage(`{"practical":{"destination":"Lisbon, Portugal"}}`),
		CompletedItems: []string{"item-1-0"},
	})
	require.NoError(t, err)
	return id
}

func TestSaveJourney_TitleFallsBackToTripTitle(t *testing.T) {
	repo := newFakeJourneyRepository()
	svc := NewJourneyService(repo)
	accountID := uuid.New()

	id := saveTestJourney(t, svc, accountID)

	stored := repo.journeys[id]
	require.NotNil(t, stored)
	assert.Equal(t, "Pastel de Nata State of Mind", stored.Title)
	assert.Equal(t, "Lisbon, Portugal", stored.Destination)
	assert.Equal(t, "2025-09-10", stored.StartDate)
	assert.Equal(t, "2025-09-12", stored.EndDate)
	assert.Equal(t, utils.ItinerarySchemaVersion, stored.SchemaVersion)
}

func TestSaveJourney_InvalidPayload(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepository())

	_, err := svc.SaveJourney(context.Background(), uuid.New(), request_models.SaveJourneyRequest{
		Itinerary: json.RawMessage(`not json`),
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}

func TestGetJourney_ScopedToAccount(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepository())
	owner := uuid.New()

	id := saveTestJourney(t, svc, owner)

	detail, err := svc.GetJourney(context.Background(), owner, id)
	require.NoError(t, err)
	assert.Equal(t, utils.ItinerarySchemaVersion, detail.SchemaVersion)
	assert.Equal(t, []string{"item-1-0"}, detail.CompletedItems)

	_, err = svc.GetJourney(context.Background(), uuid.New(), id)
	assert.True(t, errors.Is(err, utils.ErrJourneyNotFound))
}

func TestListJourneys_CompletedCount(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepository())
	accountID := uuid.New()

	saveTestJourney(t, svc, accountID)

	journeys, err := svc.ListJourneys(context.Background(), accountID, 1, 10)
	require.NoError(t, err)
	require.Len(t, journeys, 1)
	assert.Equal(t, 1, journeys[0].CompletedCount)
	assert.Equal(t, "Pastel de Nata State of Mind", journeys[0].Title)
}

func TestUpdateCompletion(t *testing.T) {
	repo := newFakeJourneyRepository()
	svc := NewJourneyService(repo)
	accountID := uuid.New()

	id := saveTestJourney(t, svc, accountID)
	before := repo.journeys[id].Itinerary

	err := svc.UpdateCompletion(context.Background(), accountID, id, []string{"item-1-0", "item-2-1"})
	require.NoError(t, err)

	stored := repo.journeys[id]
	assert.Equal(t, pq.StringArray{"item-1-0", "item-2-1"}, stored.CompletedItems)
	// The itinerary content is untouched by a completion update.
	assert.Equal(t, before, stored.Itinerary)

	err = svc.UpdateCompletion(context.Background(), accountID, uuid.New().String(), nil)
	assert.True(t, errors.Is(err, utils.ErrJourneyNotFound))
}

func TestUpdateItinerary(t *testing.T) {
	repo := newFakeJourneyRepository()
	svc := NewJourneyService(repo)
	accountID := uuid.New()

	id := saveTestJourney(t, svc, accountID)

	err := svc.UpdateItinerary(context.Background(), accountID, id, request_models.UpdateItineraryRequest{
		Itinerary:   json.RawMessage(rawItineraryJSON(5)),
		SoulProfile: json.RawMessage(`{"practical":{"destination":"Lisbon, Portugal"}}`),
	})
	require.NoError(t, err)

	// Completion marks survive a content update.
	stored := repo.journeys[id]
	assert.Equal(t, pq.StringArray{"item-1-0"}, stored.CompletedItems)

	err = svc.UpdateItinerary(context.Background(), accountID, "not-a-uuid", request_models.UpdateItineraryRequest{
		Itinerary: json.RawMessage(rawItineraryJSON(3)),
	})
	assert.True(t, errors.Is(err, utils.ErrJourneyNotFound))
}

func TestDeleteJourney(t *testing.T) {
	svc := NewJourneyService(newFakeJourneyRepository())
	accountID := uuid.New()

	id := saveTestJourney(t, svc, accountID)

	require.NoError(t, svc.DeleteJourney(context.Background(), accountID, id))

	_, err := svc.GetJourney(context.Background(), accountID, id)
	assert.True(t, errors.Is(err, utils.ErrJourneyNotFound))

	err = svc.DeleteJourney(context.Background(), accountID, id)
	assert.True(t, errors.Is(err, utils.ErrJourneyNotFound))
}
