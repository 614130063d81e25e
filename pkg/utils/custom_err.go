package utils

import (
	"errors"
	"fmt"
)

var (
	ErrProfileIneligible    = errors.New("soul profile is not eligible for generation")
	ErrUpstreamUnavailable  = errors.New("generation service unavailable")
	ErrGenerationTimeout    = errors.New("generation timed out")
	ErrSchemaViolation      = errors.New("generated itinerary violates schema")
	ErrNoPendingChanges     = errors.New("no practical edits to regenerate")
	ErrRegenerationInFlight = errors.New("regeneration already in flight")
	ErrSessionNotFound      = errors.New("itinerary session not found")
	ErrJourneyNotFound      = errors.New("journey not found")
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrAddressNotFound      = errors.New("address not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDatabaseError        = errors.New("database error")
)

// ProfileFieldError names the first practical field that blocks generation.
type ProfileFieldError struct {
	Field  string
	Reason string
}

func (e *ProfileFieldError) Error() string {
	return fmt.Sprintf("practical.%s: %s", e.Field, e.Reason)
}

func (e *ProfileFieldError) Unwrap() error { return ErrProfileIneligible }

// DayCountMismatchError reports an itinerary whose day list does not cover the
// inclusive date range. The result is rejected, never padded.
type DayCountMismatchError struct {
	Expected int
	Actual   int
}

func (e *DayCountMismatchError) Error() string {
	return fmt.Sprintf("itinerary has %d days, date range requires %d", e.Actual, e.Expected)
}

func (e *DayCountMismatchError) Unwrap() error { return ErrSchemaViolation }

// MissingAddressError points at the first itinerary item without an address.
type MissingAddressError struct {
	Day      int
	ItemType string
	Index    int
}

func (e *MissingAddressError) Error() string {
	return fmt.Sprintf("day %d %s[%d] has an empty address", e.Day, e.ItemType, e.Index)
}

func (e *MissingAddressError) Unwrap() error { return ErrSchemaViolation }
