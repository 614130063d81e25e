package services

import (
	"strings"

	"vibego/internal/models/request_models"
	"vibego/pkg/utils"
)

type ProfileServiceInterface interface {
	NormalizeSoulProfile(raw *request_models.SoulProfile) (*request_models.SoulProfile, error)
}

type ProfileService struct{}

func NewProfileService() ProfileServiceInterface {
	return &ProfileService{}
}

var companionOptions = map[string]bool{
	"solo":    true,
	"partner": true,
	"friends": true,
	"family":  true,
}

// NormalizeSoulProfile is the single eligibility boundary: every practical
// field is checked here so downstream components can assume well-formedness.
// Pure transform; the input profile is never mutated, an ineligible profile
// fails with a ProfileFieldError naming the first offending field.
func (s *ProfileService) NormalizeSoulProfile(raw *request_models.SoulProfile) (*request_models.SoulProfile, error) {
	if raw == nil {
		return nil, &utils.ProfileFieldError{Field: "destination", Reason: "soul profile is required"}
	}

	practical := raw.Practical

	if strings.TrimSpace(practical.Destination) == "" {
		return nil, &utils.ProfileFieldError{Field: "destination", Reason: "destination is required"}
	}

	start, err := utils.ParseISODate(practical.StartDate)
	if err != nil {
		return nil, &utils.ProfileFieldError{Field: "startDate", Reason: "must be a YYYY-MM-DD date"}
	}
	end, err := utils.ParseISODate(practical.EndDate)
	if err != nil {
		return nil, &utils.ProfileFieldError{Field: "endDate", Reason: "must be a YYYY-MM-DD date"}
	}
	if end.Before(start) {
		return nil, &utils.ProfileFieldError{Field: "endDate", Reason: "must not be before startDate"}
	}

	if practical.Budget.Amount() <= 0 {
		return nil, &utils.ProfileFieldError{Field: "budget", Reason: "must be a positive amount"}
	}

	companions := strings.ToLower(strings.TrimSpace(practical.Companions))
	if !companionOptions[companions] {
		return nil, &utils.ProfileFieldError{Field: "companions", Reason: "must be one of solo, partner, friends, family"}
	}

	out := raw.Clone()
	out.Practical.Destination = strings.TrimSpace(practical.Destination)
	out.Practical.Companions = companions
	return out, nil
}
