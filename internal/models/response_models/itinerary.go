package response_models

import (
	"fmt"

	"vibego/internal/models/request_models"
)

type Activity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Address     string `json:"address"`
}

type Restaurant struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Address     string `json:"address"`
}

type Day struct {
	Day         int          `json:"day"`
	Theme       string       `json:"theme"`
	Activities  []Activity   `json:"activities"`
	Restaurants []Restaurant `json:"restaurants"`
}

// ItemID derives the completion-overlay key for an item position within the
// day, activities first, then restaurants. Identity is positional; a
// regeneration may reorder items and leave stale marks behind, which is
// accepted for compatibility with stored journeys.
func (d Day) ItemID(index int) string {
	return fmt.Sprintf("item-%d-%d", d.Day, index)
}

func (d Day) ItemCount() int {
	return len(d.Activities) + len(d.Restaurants)
}

// Itinerary is the canonical generation output. Budget, companions and dates
// echo the originating profile so callers can render without re-consulting it.
type Itinerary struct {
	Destination    string                     `json:"destination"`
	TripTitle      string                     `json:"tripTitle"`
	Budget         request_models.BudgetValue `json:"budget"`
	Companions     string                     `json:"companions"`
	StartDate      string                     `json:"startDate"`
	EndDate        string                     `json:"endDate"`
	DailyItinerary []Day                      `json:"dailyItinerary"`
	SoulQuote      string                     `json:"soulQuote,omitempty"`
	CreatedAt      string                     `json:"createdAt,omitempty"`
}
