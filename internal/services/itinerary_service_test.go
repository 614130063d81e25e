package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type mockGenerationClient struct {
	response string
	err      error
	calls    int
}

func (m *mockGenerationClient) GenerateItinerary(ctx context.Context, prompt string) (string, error) {
	m.calls++
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockGenerationClient) Close() error { return nil }

// rawItineraryJSON builds a well-formed model response with the given number
// of days, one activity and one restaurant per day.
func rawItineraryJSON(days int) string {
	daily := make([]map[string]any, 0, days)
	for d := 1; d <= days; d++ {
		daily = append(daily, map[string]any{
			"day":   d,
			"theme": fmt.Sprintf("Day %d in the old town", d),
			"activities": []map[string]any{
				{
					"name":        fmt.Sprintf("Miradouro stop %d", d),
					"description": "Catch the view over the rooftops",
					"emoji":       "🌅",
					"address":     fmt.Sprintf("Largo das Portas do Sol %d, Lisboa", d),
				},
			},
			"restaurants": []map[string]any{
				{
					"name":        fmt.Sprintf("Tasca do Dia %d", d),
					"description": "Grilled fish and vinho verde",
					"emoji":       "🐟",
					"address":     fmt.Sprintf("Rua dos Bacalhoeiros %d, Lisboa", d),
				},
			},
		})
	}

	doc := map[string]any{
		"destination":    "Lisbon, Portugal",
		"tripTitle":      "Pastel de Nata State of Mind",
		"budget":         1500,
		"companions":     "partner",
		"startDate":      "2025-09-10",
		"endDate":        "2025-09-12",
		"soulQuote":      "Wherever you go becomes a part of you somehow. - Anita Desai",
		"dailyItinerary": daily,
	}
	out, _ := json.Marshal(doc)
	return string(out)
}

func newTestItineraryService(client *mockGenerationClient) ItineraryServiceInterface {
	return NewItineraryService(NewProfileService(), NewPromptService(), client)
}

func TestGenerateItinerary_HappyPath(t *testing.T) {
	client := &mockGenerationClient{response: rawItineraryJSON(3)}
	svc := newTestItineraryService(client)

	itinerary, err := svc.GenerateItinerary(context.Background(), lisbonProfile())
	require.NoError(t, err)
	require.NotNil(t, itinerary)

	assert.Equal(t, 1, client.calls)
	assert.Equal(t, "Lisbon, Portugal", itinerary.Destination)
	assert.Len(t, itinerary.DailyItinerary, 3)

	// Practical fields echo the profile, not whatever the model answered.
	assert.Equal(t, 1500.0, itinerary.Budget.Amount())
	assert.False(t, itinerary.Budget.IsString)
	assert.Equal(t, "partner", itinerary.Companions)
	assert.Equal(t, "2025-09-10", itinerary.StartDate)
	assert.Equal(t, "2025-09-12", itinerary.EndDate)
	assert.NotEmpty(t, itinerary.CreatedAt)
	assert.NotEmpty(t, itinerary.SoulQuote)
}

func TestGenerateItinerary_IneligibleProfileNeverReachesModel(t *testing.T) {
	client := &mockGenerationClient{response: rawItineraryJSON(3)}
	svc := newTestItineraryService(client)

	profile := lisbonProfile()
	profile.Practical.Destination = ""

	itinerary, err := svc.GenerateItinerary(context.Background(), profile)
	require.Error(t, err)
	assert.Nil(t, itinerary)
	assert.True(t, errors.Is(err, utils.ErrProfileIneligible))
	assert.Equal(t, 0, client.calls)
}

func TestGenerateItinerary_DayCountMismatchRejected(t *testing.T) {
	client := &mockGenerationClient{response: rawItineraryJSON(2)}
	svc := newTestItineraryService(client)

	itinerary, err := svc.GenerateItinerary(context.Background(), lisbonProfile())
	require.Error(t, err)
	assert.Nil(t, itinerary)

	var mismatch *utils.DayCountMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 3, mismatch.Expected)
	assert.Equal(t, 2, mismatch.Actual)
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
}

func TestGenerateItinerary_MissingAddressRejected(t *testing.T) {
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(rawItineraryJSON(3)), &doc))
	day2 := doc["dailyItinerary"].([]any)[1].(map[string]any)
	day2["restaurants"].([]any)[0].(map[string]any)["address"] = "   "
	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	client := &mockGenerationClient{response: string(raw)}
	svc := newTestItineraryService(client)

	itinerary, err := svc.GenerateItinerary(context.Background(), lisbonProfile())
	require.Error(t, err)
	assert.Nil(t, itinerary)

	var missing *utils.MissingAddressError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, 2, missing.Day)
	assert.Equal(t, "restaurant", missing.ItemType)
	assert.Equal(t, 0, missing.Index)
}

func TestGenerateItinerary_StringBudgetSurvives(t *testing.T) {
	client := &mockGenerationClient{response: rawItineraryJSON(3)}
	svc := newTestItineraryService(client)

	profile := lisbonProfile()
	profile.Practical.Budget = request_models.BudgetValue{Text: "2000", IsString: true, Number: 2000}

	itinerary, err := svc.GenerateItinerary(context.Background(), profile)
	require.NoError(t, err)

	out, err := json.Marshal(itinerary.Budget)
	require.NoError(t, err)
	assert.Equal(t, `"2000"`, string(out))
}

func TestGenerateItinerary_UpstreamErrorsPassThrough(t *testing.T) {
	for _, sentinel := range []error{utils.ErrUpstreamUnavailable, utils.ErrGenerationTimeout} {
		client := &mockGenerationClient{err: sentinel}
		svc := newTestItineraryService(client)

		itinerary, err := svc.GenerateItinerary(context.Background(), lisbonProfile())
		assert.Nil(t, itinerary)
		assert.True(t, errors.Is(err, sentinel))
	}
}

func TestGenerateItinerary_MalformedResponseRejected(t *testing.T) {
	client := &mockGenerationClient{response: `{"destination": "Lisbon, Portugal"}`}
	svc := newTestItineraryService(client)

	itinerary, err := svc.GenerateItinerary(context.Background(), lisbonProfile())
	require.Error(t, err)
	assert.Nil(t, itinerary)
	assert.True(t, errors.Is(err, utils.ErrSchemaViolation))
}
