package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcatalog/internal/database"
	"tripcatalog/internal/middleware"
	"tripcatalog/internal/modules/assistant"
	"tripcatalog/internal/modules/catalog"
	"tripcatalog/internal/modules/itinerary"
	"tripcatalog/internal/repository"
	"tripcatalog/internal/seed"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorDetail    `json:"error,omitempty"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, seed.Run(context.Background(), db))

	catalogRepo := repository.NewCatalogRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	itineraryService := itinerary.NewService(itineraryRepo, catalogRepo)
	assistantService := assistant.NewService(itineraryService)

	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	itinerary.NewHandler(itineraryService, 10).RegisterRoutes(v1)
	catalog.NewHandler(catalog.NewService(catalogRepo)).RegisterRoutes(v1)
	assistant.NewHandler(assistantService).RegisterRoutes(v1)

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestCreateItinerary(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/itineraries", gin.H{
		"name":        "Weekend Escape",
		"description": "Quick Phuket break",
		"nights":      2,
		"daily_plans": []gin.H{
			{"day_number": 1, "hotel_id": 1, "transfer_id": 1, "activity_ids": []int64{2}, "notes": "Arrival"},
			{"day_number": 2, "hotel_id": 1, "activity_ids": []int64{1}},
		},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, env.Success)

	var created itinerary.ItineraryResponse
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Len(t, created.DailyPlans, 2)
	// 85 (hotel) + 20 (transfer) + 15 (beach day) + 85 + 30 (nightlife)
	assert.Equal(t, 235.0, created.TotalPrice)
}

func TestCreateItinerary_UnknownHotel(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/itineraries", gin.H{
		"name":        "Ghost Hotel",
		"description": "Should fail",
		"nights":      1,
		"daily_plans": []gin.H{
			{"day_number": 1, "hotel_id": 999},
		},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "REFERENCE_NOT_FOUND", env.Error.Code)
	assert.Contains(t, env.Error.Message, "hotel")
}

func TestCreateItinerary_ValidationError(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/itineraries", gin.H{
		"name":        "No Plans",
		"description": "Missing daily plans",
		"nights":      2,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestGetItineraryByID(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/itineraries/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var it itinerary.ItineraryResponse
	require.NoError(t, json.Unmarshal(env.Data, &it))
	assert.Equal(t, "Phuket Getaway", it.Name)
	assert.Equal(t, 3, it.Nights)
	require.NotEmpty(t, it.DailyPlans)
	assert.NotEmpty(t, it.DailyPlans[0].Hotel.Name)

	w, env = doJSON(t, r, http.MethodGet, "/api/v1/itineraries/99999", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestListItineraries_Filters(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/itineraries?nights=5&recommended_only=true", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var itineraries []itinerary.ItineraryResponse
	require.NoError(t, json.Unmarshal(env.Data, &itineraries))
	require.NotEmpty(t, itineraries)
	for _, it := range itineraries {
		assert.Equal(t, 5, it.Nights)
		assert.True(t, it.IsRecommended)
	}
}

func TestListItineraries_BadQueryValues(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{
		"/api/v1/itineraries?nights=abc",
		"/api/v1/itineraries?skip=-1",
		"/api/v1/itineraries?skip=x",
		"/api/v1/itineraries?limit=0",
		"/api/v1/itineraries?limit=ten",
	} {
		w, env := doJSON(t, r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		require.NotNil(t, env.Error, path)
		assert.Equal(t, "INVALID_QUERY", env.Error.Code, path)
	}
}

func TestListLocations(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/locations?region=Krabi", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var locations []catalog.LocationResponse
	require.NoError(t, json.Unmarshal(env.Data, &locations))
	require.Len(t, locations, 4)
	for _, l := range locations {
		assert.Equal(t, "Krabi", l.Region)
	}
}

func TestAssistant_Tools(t *testing.T) {
	r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/api/v1/assistant/tools", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tools []assistant.ToolDescriptor
	require.NoError(t, json.Unmarshal(env.Data, &tools))
	require.Len(t, tools, 2)

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/assistant/tools/get_recommended_itinerary", gin.H{"nights": 5})
	require.Equal(t, http.StatusOK, w.Code)
	var result struct {
		Itinerary *itinerary.ItineraryResponse `json:"itinerary"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotNil(t, result.Itinerary)
	assert.Equal(t, 5, result.Itinerary.Nights)

	// Out-of-range input answers with a message, not an error code.
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/assistant/tools/get_recommended_itinerary", gin.H{"nights": 12})
	require.Equal(t, http.StatusOK, w.Code)
	var message struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &message))
	assert.Contains(t, message.Message, "between 2 and 8")

	w, env = doJSON(t, r, http.MethodPost, "/api/v1/assistant/tools/list_available_durations", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)
	var durations struct {
		Durations []int `json:"durations"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &durations))
	assert.Equal(t, []int{2, 3, 4, 5, 6, 7, 8}, durations.Durations)

	w, _ = doJSON(t, r, http.MethodPost, "/api/v1/assistant/tools/no_such_tool", gin.H{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAssistant_ItineraryResource(t *testing.T) {
	r := setupRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/api/v1/assistant/resources/itineraries/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	text := w.Body.String()
	assert.Contains(t, text, "Found 1 recommended itineraries for 3 nights:")
	assert.Contains(t, text, "Itinerary: Phuket Getaway")
	assert.Contains(t, text, "Day 1:")

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/assistant/resources/itineraries/11", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No recommended itineraries available for 11 nights")

	w, _ = doJSON(t, r, http.MethodGet, "/api/v1/assistant/resources/itineraries/abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid input")
}
