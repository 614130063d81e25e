package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibego/internal/models/request_models"
	"vibego/internal/services"
	"vibego/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
	regenService     services.RegenServiceInterface
}

func NewItineraryController(
	itineraryService services.ItineraryServiceInterface,
	regenService services.RegenServiceInterface,
) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
		regenService:     regenService,
	}
}

// GenerateItineraryHandler runs the full generation pipeline and opens an
// editing session for the result so practical-field edits can be regenerated.
func (i *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Soul profile is required")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req.SoulProfile)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	sessionID, err := i.regenService.OpenSession(itinerary, req.SoulProfile, nil)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"session_id": sessionID,
		"itinerary":  itinerary,
	}, "Itinerary generated successfully")
}

// RegenerateItineraryHandler applies a practical-field patch to the session
// and, if anything actually changed, re-runs generation. A clean session is
// reported as-is without touching the model.
func (i *ItineraryController) RegenerateItineraryHandler(c *gin.Context) {
	var req request_models.RegenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "session_id is required")
		return
	}

	dirty, err := i.regenService.ProposeEdit(req.SessionID, req.Patch)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if !dirty {
		utils.RespondSuccess(c, gin.H{"regenerated": false}, "No practical changes detected")
		return
	}

	itinerary, err := i.regenService.Regenerate(c.Request.Context(), req.SessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"regenerated": true,
		"itinerary":   itinerary,
	}, "Itinerary regenerated successfully")
}

func (i *ItineraryController) CloseSessionHandler(c *gin.Context) {
	sessionID := c.Param("id")
	if sessionID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session id is required")
		return
	}
	i.regenService.CloseSession(sessionID)
	utils.RespondSuccess(c, nil, "Session closed")
}
