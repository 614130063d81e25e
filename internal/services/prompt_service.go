package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type PromptServiceInterface interface {
	CompileItineraryPrompt(profile *request_models.SoulProfile) string
}

type PromptService struct{}

func NewPromptService() PromptServiceInterface {
	return &PromptService{}
}

// CompileItineraryPrompt renders the canonical profile plus the fixed rule set
// into a single instruction block. Deterministic: the same profile always
// yields byte-identical text (no timestamps, no randomness), so generation is
// reproducible for testing and caching.
func (s *PromptService) CompileItineraryPrompt(profile *request_models.SoulProfile) string {
	expectedDays := 0
	if start, err := utils.ParseISODate(profile.Practical.StartDate); err == nil {
		if end, err := utils.ParseISODate(profile.Practical.EndDate); err == nil {
			expectedDays = utils.DaysBetweenInclusive(start, end)
		}
	}

	// Struct marshalling has a fixed field order, which keeps this stable.
	profileJSON, _ := json.MarshalIndent(profile, "", "  ")

	var b strings.Builder
	b.WriteString("You are a world-class, creative, and thoughtful travel agent AI.\n")
	b.WriteString("Your mission is to generate a structured JSON itinerary based on a user's \"soul profile\" (see below).\n")
	b.WriteString("This itinerary must be not only practical but also deeply resonant with the user's stated personality, mood, intentions, and logistics.\n\n")

	b.WriteString("CRITICAL INSTRUCTIONS:\n")
	b.WriteString("1. Your ENTIRE response MUST be a single, valid JSON object. Do not include any text, comments, or any characters outside of the JSON object.\n")
	b.WriteString("2. Pay close attention to escaping characters within strings. A quote inside a description must be escaped as \\\".\n")
	b.WriteString("3. For every single 'activity' and 'restaurant', you MUST provide a real, verifiable street address.\n")
	b.WriteString("4. The name and address MUST correspond to a real-world location. Do not invent places.\n")
	b.WriteString("5. The ENTIRE itinerary must take place within the user's specified 'destination'. Do not suggest locations in other cities.\n")
	fmt.Fprintf(&b, "6. The number of days in 'dailyItinerary' MUST exactly match the number of days between 'startDate' and 'endDate' (inclusive) in the user's profile. For example, if startDate is 2025-06-01 and endDate is 2025-06-05, you MUST generate 5 days, one for each date in the range. For this profile that means exactly %d day entries, numbered 1 through %d.\n", expectedDays, expectedDays)
	b.WriteString("7. The 'tripTitle' field MUST be a creative, fun, and slightly cheeky title that combines the user's personality, mood, intention, and destination. Use wordplay, puns, or pop culture references if possible. Make it sound like a social media headline or a viral travel blog post. Never a generic title.\n")
	b.WriteString("8. The 'soulQuote' field MUST be a famous quote (with author) that matches the trip's vibe, intention, or destination. The quote should be inspiring, poetic, or philosophical, and relevant to the user's journey.\n")
	b.WriteString("9. The 'budget', 'companions', 'startDate', 'endDate', and 'destination' fields MUST match the user's logistics exactly (from the practical fields in the soul profile).\n")
	b.WriteString("10. You MUST use every field actually supplied in the soul profile (not just logistics) to inform the itinerary's style, activities, and themes. Reference the user's mood, intention, archetype, and any special requests or interests.\n\n")

	b.WriteString("Here is the user's soul profile, which includes all quiz answers and logistics:\n")
	b.WriteString("```json\n")
	b.Write(profileJSON)
	b.WriteString("\n```\n")

	return b.String()
}
