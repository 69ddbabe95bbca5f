package itinerary

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tripcatalog/internal/pkg/response"
	"tripcatalog/internal/pkg/validator"
)

// maxPageLimit caps the page size a caller can request when listing.
const maxPageLimit = 100

type Handler struct {
	service *Service
	limit   int
}

// NewHandler wires the itinerary routes. limit is the default page size for
// listing when the caller sends none.
func NewHandler(service *Service, limit int) *Handler {
	return &Handler{service: service, limit: limit}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/itineraries", h.CreateItinerary)
	rg.GET("/itineraries", h.GetItineraries)
	rg.GET("/itineraries/:id", h.GetItineraryByID)
}

// CreateItinerary handles POST /api/v1/itineraries
func (h *Handler) CreateItinerary(c *gin.Context) {
	var req CreateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		return
	}

	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Request validation failed", details)
		return
	}

	it, err := h.service.Compose(c.Request.Context(), req)
	if err != nil {
		var refErr *ReferenceNotFoundError
		if errors.As(err, &refErr) {
			response.Error(c, http.StatusBadRequest, "REFERENCE_NOT_FOUND", refErr.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create itinerary")
		return
	}

	response.Success(c, http.StatusCreated, ToItineraryResponse(it))
}

// GetItineraries handles GET /api/v1/itineraries with filters
func (h *Handler) GetItineraries(c *gin.Context) {
	var f ListFilters

	if raw := c.Query("nights"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "nights must be an integer")
			return
		}
		f.Nights = &v
	}
	f.RecommendedOnly = c.Query("recommended_only") == "true"

	if raw := c.Query("skip"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "skip must be a non-negative integer")
			return
		}
		f.Skip = v
	}

	f.Limit = h.limit
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_QUERY", "limit must be a positive integer")
			return
		}
		// Page size stays bounded no matter what the caller asks for.
		if v > maxPageLimit {
			v = maxPageLimit
		}
		f.Limit = v
	}

	itineraries, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list itineraries")
		return
	}

	resp := make([]ItineraryResponse, 0, len(itineraries))
	for i := range itineraries {
		resp = append(resp, ToItineraryResponse(&itineraries[i]))
	}

	response.Success(c, http.StatusOK, resp)
}

// GetItineraryByID handles GET /api/v1/itineraries/:id
func (h *Handler) GetItineraryByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid itinerary ID")
		return
	}

	it, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		var nfErr *NotFoundError
		if errors.As(err, &nfErr) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", nfErr.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to fetch itinerary")
		return
	}

	response.Success(c, http.StatusOK, ToItineraryResponse(it))
}
