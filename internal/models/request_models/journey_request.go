package request_models

import "encoding/json"

type SaveJourneyRequest struct {
	Title          string          `json:"title"`
	Itinerary      json.RawMessage `json:"itinerary" binding:"required"`
	SoulProfile    json.RawMessage `json:"soul_profile"`
	CompletedItems []string        `json:"completed_items"`
}

type UpdateCompletionRequest struct {
	CompletedItems []string `json:"completed_items"`
}

type UpdateItineraryRequest struct {
	Itinerary   json.RawMessage `json:"itinerary" binding:"required"`
	SoulProfile json.RawMessage `json:"soul_profile"`
}
