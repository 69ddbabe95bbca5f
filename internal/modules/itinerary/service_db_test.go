package itinerary

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tripcatalog/internal/database"
	"tripcatalog/internal/domain"
	"tripcatalog/internal/repository"
)

// Tests against a real sqlite database: the compose path must be atomic at
// the storage level, not just short-circuited by validation.

func setupService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := database.Connect(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	location := domain.Location{Name: "A", Region: "Phuket"}
	require.NoError(t, db.Create(&location).Error)
	hotel := domain.Hotel{Name: "Hotel A", LocationID: location.ID, PricePerNight: 100.0}
	require.NoError(t, db.Create(&hotel).Error)
	activity := domain.Activity{Name: "Tour A", LocationID: location.ID, Duration: 2.0, Price: 20.0}
	require.NoError(t, db.Create(&activity).Error)

	service := NewService(
		repository.NewItineraryRepository(db),
		repository.NewCatalogRepository(db),
	)
	return service, db
}

func TestCompose_PersistsAggregateWithDerivedTotal(t *testing.T) {
	service, db := setupService(t)

	it, err := service.Compose(context.Background(), CreateItineraryRequest{
		Name:   "One Nighter",
		Nights: 1,
		DailyPlans: []DailyPlanRequest{
			{DayNumber: 1, HotelID: 1, ActivityIDs: []int64{1}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, it.TotalPrice)

	var stored domain.Itinerary
	require.NoError(t, db.Preload("DailyPlans.Activities").First(&stored, it.ID).Error)
	assert.Equal(t, 120.0, stored.TotalPrice)
	require.Len(t, stored.DailyPlans, 1)
	assert.Len(t, stored.DailyPlans[0].Activities, 1)
}

func TestCompose_LeavesNothingBehindOnMissingReference(t *testing.T) {
	service, db := setupService(t)

	_, err := service.Compose(context.Background(), CreateItineraryRequest{
		Name:   "Dangling",
		Nights: 2,
		DailyPlans: []DailyPlanRequest{
			{DayNumber: 1, HotelID: 1},
			{DayNumber: 2, HotelID: 999},
		},
	})

	var refErr *ReferenceNotFoundError
	require.ErrorAs(t, err, &refErr)
	assert.Equal(t, "hotel", refErr.Kind)

	var itineraries, plans int64
	require.NoError(t, db.Model(&domain.Itinerary{}).Count(&itineraries).Error)
	require.NoError(t, db.Model(&domain.DailyPlan{}).Count(&plans).Error)
	assert.Zero(t, itineraries)
	assert.Zero(t, plans)
}
