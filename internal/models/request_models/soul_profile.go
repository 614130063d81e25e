package request_models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// BudgetValue keeps the caller's original budget representation: a JSON number
// stays numeric, a currency-formatted string ("$2,000") stays a string. The
// numeric value is parsed either way for eligibility checks.
type BudgetValue struct {
	Number   float64
	Text     string
	IsString bool
}

func (b *BudgetValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		b.Text = s
		b.IsString = true
		b.Number = parseBudgetText(s)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	b.Number = n
	b.IsString = false
	return nil
}

func (b BudgetValue) MarshalJSON() ([]byte, error) {
	if b.IsString {
		return json.Marshal(b.Text)
	}
	return json.Marshal(b.Number)
}

// Amount returns the parsed numeric value, 0 when absent or unparseable.
func (b BudgetValue) Amount() float64 { return b.Number }

func parseBudgetText(s string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, s)
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n
}

type Archetype struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// PracticalDetails carries the logistics a generation cannot run without.
type PracticalDetails struct {
	Destination     string      `json:"destination"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	Budget          BudgetValue `json:"budget"`
	Companions      string      `json:"companions"`
	SpecialRequests string      `json:"specialRequests,omitempty"`
}

// SoulProfile is the canonical questionnaire result. Everything outside
// Practical is a personalization signal and optional.
type SoulProfile struct {
	Archetype              Archetype        `json:"archetype"`
	Mood                   string           `json:"mood,omitempty"`
	Intention              string           `json:"intention,omitempty"`
	Philosophy             string           `json:"philosophy,omitempty"`
	DestinationsOfInterest []string         `json:"destinationsOfInterest,omitempty"`
	Practical              PracticalDetails `json:"practical"`
}

// Clone returns a deep copy; the regeneration flow overlays edits on copies
// and never mutates a submitted profile in place.
func (p *SoulProfile) Clone() *SoulProfile {
	out := *p
	if p.DestinationsOfInterest != nil {
		out.DestinationsOfInterest = append([]string(nil), p.DestinationsOfInterest...)
	}
	return &out
}

type GenerateItineraryRequest struct {
	SoulProfile *SoulProfile `json:"soulProfile" binding:"required"`
}

// PracticalPatch is a partial edit to practical fields; nil means "unchanged".
type PracticalPatch struct {
	Destination *string      `json:"destination,omitempty"`
	StartDate   *string      `json:"startDate,omitempty"`
	EndDate     *string      `json:"endDate,omitempty"`
	Budget      *BudgetValue `json:"budget,omitempty"`
	Companions  *string      `json:"companions,omitempty"`
}

type RegenerateRequest struct {
	SessionID string         `json:"session_id" binding:"required"`
	Patch     PracticalPatch `json:"patch"`
}
