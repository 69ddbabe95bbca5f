package assistant

import (
	"errors"
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
	a := rg.Group("/assistant")
	{
		a.GET("/tools", h.ListTools)
		a.POST("/tools/:name", h.CallTool)
		a.GET("/resources/itineraries/:nights", h.ItineraryResource)
	}
}

// ListTools handles GET /api/v1/assistant/tools
func (h *Handler) ListTools(c *gin.Context) {
	response.Success(c, http.StatusOK, Tools)
}

type toolArgs struct {
	Nights int `json:"nights"`
}

// CallTool handles POST /api/v1/assistant/tools/:name. Range violations and
// empty catalogs answer with a descriptive message payload so the calling
// model always has something to relay.
func (h *Handler) CallTool(c *gin.Context) {
	name := c.Param("name")

	switch name {
	case ToolGetRecommendedItinerary:
		var args toolArgs
		if err := c.ShouldBindJSON(&args); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid tool arguments")
			return
		}

		it, err := h.service.RecommendedItinerary(c.Request.Context(), args.Nights)
		if err != nil {
			var oor *OutOfRangeError
			if errors.As(err, &oor) {
				response.Success(c, http.StatusOK, gin.H{"message": oor.Error()})
				return
			}
			if NotFound(err) {
				response.Success(c, http.StatusOK, gin.H{"message": "No recommended itineraries found"})
				return
			}
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Tool call failed")
			return
		}

		response.Success(c, http.StatusOK, gin.H{"itinerary": it})

	case ToolListAvailableDurations:
		durations, err := h.service.AvailableDurations(c.Request.Context())
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Tool call failed")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"durations": durations})

	default:
		response.Error(c, http.StatusNotFound, "UNKNOWN_TOOL", "Unknown tool: "+name)
	}
}

// ItineraryResource handles GET /api/v1/assistant/resources/itineraries/:nights
// and answers plain text for the language-model client.
func (h *Handler) ItineraryResource(c *gin.Context) {
	text, err := h.service.ItineraryText(c.Request.Context(), c.Param("nights"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to render itineraries")
		return
	}

	c.String(http.StatusOK, text)
}
