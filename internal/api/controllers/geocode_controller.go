package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibego/internal/services"
	"vibego/pkg/utils"
)

type GeocodeController struct {
	geocodeService services.GeocodeServiceInterface
}

func NewGeocodeController(geocodeService services.GeocodeServiceInterface) *GeocodeController {
	return &GeocodeController{geocodeService: geocodeService}
}

func (g *GeocodeController) LookupHandler(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		utils.RespondError(c, http.StatusBadRequest, "Missing address parameter")
		return
	}

	result, err := g.geocodeService.Lookup(c.Request.Context(), address)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "")
}
