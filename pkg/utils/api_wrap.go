package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service errors onto the API envelope. Generation
// failures stay deliberately coarse for the client: a short message plus a
// retry action, never a partial itinerary.
func HandleServiceError(c *gin.Context, err error) {
	var fieldErr *ProfileFieldError

	switch {
	case errors.As(err, &fieldErr):
		RespondError(c, http.StatusBadRequest, "Please complete required fields: "+fieldErr.Error())
	case errors.Is(err, ErrProfileIneligible), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrNoPendingChanges):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrGenerationTimeout):
		RespondError(c, http.StatusGatewayTimeout, "Itinerary generation timed out. Please try again.")
	case errors.Is(err, ErrUpstreamUnavailable):
		RespondError(c, http.StatusBadGateway, "Itinerary generation is temporarily unavailable. Please try again.")
	case errors.Is(err, ErrSchemaViolation), isStructuralViolation(err):
		log.Printf("Generation rejected: %v", err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary. Please try again.")
	case errors.Is(err, ErrRegenerationInFlight):
		RespondError(c, http.StatusConflict, "A regeneration is already in progress for this itinerary")
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, ErrJourneyNotFound),
		errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrAddressNotFound):
		RespondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "Email already registered")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func isStructuralViolation(err error) bool {
	var dayCount *DayCountMismatchError
	var missingAddr *MissingAddressError
	return errors.As(err, &dayCount) || errors.As(err, &missingAddr)
}
