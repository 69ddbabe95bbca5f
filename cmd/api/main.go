package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcatalog/internal/config"
	"tripcatalog/internal/database"
	"tripcatalog/internal/middleware"
	"tripcatalog/internal/modules/assistant"
	"tripcatalog/internal/modules/catalog"
	"tripcatalog/internal/modules/itinerary"
	"tripcatalog/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	catalogRepo := repository.NewCatalogRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	itineraryService := itinerary.NewService(itineraryRepo, catalogRepo)
	itineraryHandler := itinerary.NewHandler(itineraryService, cfg.PageLimit)

	catalogService := catalog.NewService(catalogRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	assistantService := assistant.NewService(itineraryService)
	assistantHandler := assistant.NewHandler(assistantService)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":     "Welcome to Thailand Travel Itinerary API",
			"api_version": "1.0.0",
		})
	})

	v1 := r.Group("/api/v1")
	{
		itineraryHandler.RegisterRoutes(v1)
		catalogHandler.RegisterRoutes(v1)
		assistantHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
