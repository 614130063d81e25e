package response_models

import "encoding/json"

type JourneyResponse struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Destination    string `json:"destination"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	CreatedAt      string `json:"created_at"`
	CompletedCount int    `json:"completed_count"`
}

type JourneyDetailResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Itinerary      json.RawMessage `json:"itinerary"`
	SoulProfile    json.RawMessage `json:"soul_profile,omitempty"`
	CompletedItems []string        `json:"completed_items"`
	SchemaVersion  string          `json:"schema_version"`
	CreatedAt      string          `json:"created_at"`
}
