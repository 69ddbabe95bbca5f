package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcatalog/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/locations", h.GetLocations)
}

// GetLocations handles GET /api/v1/locations?region=Phuket
func (h *Handler) GetLocations(c *gin.Context) {
	locations, err := h.service.Locations(c.Request.Context(), c.Query("region"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list locations")
		return
	}

	response.Success(c, http.StatusOK, locations)
}
