package seed

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"tripcatalog/internal/config"
	"tripcatalog/internal/database"
	"tripcatalog/internal/domain"
	"tripcatalog/internal/modules/itinerary"
	"tripcatalog/internal/repository"
)

// Run rebuilds the schema and loads the deterministic fixture set: the
// reference catalog, three curated recommended itineraries and a backfilled
// recommended itinerary for every remaining nights value in
// [MinNights, MaxNights]. Itineraries go through the composer so their
// stored totals satisfy the pricing invariant by construction.
//
// Tables are dropped rather than emptied so id sequences restart at 1 and
// a re-run against an existing database yields the exact same rows.
func Run(ctx context.Context, db *gorm.DB) error {
	log.Println("Cleaning old data...")
	for _, table := range []any{
		"daily_plan_activity",
		&domain.DailyPlan{},
		&domain.Itinerary{},
		&domain.Transfer{},
		&domain.Activity{},
		&domain.Hotel{},
		&domain.Location{},
	} {
		if err := db.Migrator().DropTable(table); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}

	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	locations := locationFixtures()
	hotels := hotelFixtures()
	activities := activityFixtures()
	transfers := transferFixtures()

	log.Println("Seeding catalog...")
	if err := db.Create(&locations).Error; err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	if err := db.Create(&hotels).Error; err != nil {
		return fmt.Errorf("seed hotels: %w", err)
	}
	if err := db.Create(&activities).Error; err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}
	if err := db.Create(&transfers).Error; err != nil {
		return fmt.Errorf("seed transfers: %w", err)
	}

	itineraryRepo := repository.NewItineraryRepository(db)
	composer := itinerary.NewService(itineraryRepo, repository.NewCatalogRepository(db))

	log.Println("Creating itineraries...")
	covered := make(map[int]bool)
	for _, req := range curatedItineraries() {
		it, err := composer.Compose(ctx, req)
		if err != nil {
			return fmt.Errorf("compose %q: %w", req.Name, err)
		}
		if err := itineraryRepo.MarkRecommended(ctx, it.ID); err != nil {
			return fmt.Errorf("recommend %q: %w", req.Name, err)
		}
		covered[req.Nights] = true
	}

	for nights := config.MinNights; nights <= config.MaxNights; nights++ {
		if covered[nights] {
			continue
		}
		log.Printf("Creating additional %d-night itinerary...", nights)
		req := backfillItinerary(nights)
		it, err := composer.Compose(ctx, req)
		if err != nil {
			return fmt.Errorf("compose %q: %w", req.Name, err)
		}
		if err := itineraryRepo.MarkRecommended(ctx, it.ID); err != nil {
			return fmt.Errorf("recommend %q: %w", req.Name, err)
		}
	}

	log.Printf("Database seeded: %d locations, %d hotels, %d activities, %d transfers",
		len(locations), len(hotels), len(activities), len(transfers))
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

// curatedItineraries returns the three hand-built recommended trips
// (3, 5 and 7 nights).
func curatedItineraries() []itinerary.CreateItineraryRequest {
	return []itinerary.CreateItineraryRequest{
		{
			Name:        "Phuket Getaway",
			Description: "A short trip to explore the beautiful beaches and vibrant nightlife of Phuket",
			Nights:      3,
			DailyPlans: []itinerary.DailyPlanRequest{
				{DayNumber: 1, HotelID: 1, TransferID: int64Ptr(1), ActivityIDs: []int64{2}, Notes: "Arrival day with afternoon free time at Patong Beach"},
				{DayNumber: 2, HotelID: 1, ActivityIDs: []int64{1}, Notes: "Full day in Patong area with nightlife experience"},
				{DayNumber: 3, HotelID: 3, TransferID: int64Ptr(5), ActivityIDs: []int64{4}, Notes: "Change of scenery at beautiful Kata Beach"},
			},
		},
		{
			Name:        "Krabi Explorer",
			Description: "Discover the stunning islands and enjoy the water activities in Krabi",
			Nights:      5,
			DailyPlans: []itinerary.DailyPlanRequest{
				{DayNumber: 1, HotelID: 6, TransferID: int64Ptr(10), Notes: "Arrival day with evening exploration of Ao Nang"},
				{DayNumber: 2, HotelID: 6, ActivityIDs: []int64{7}, Notes: "Full day of water activities in the stunning limestone landscapes"},
				{DayNumber: 3, HotelID: 7, TransferID: int64Ptr(11), ActivityIDs: []int64{8}, Notes: "Luxury stay at the stunning Railay Peninsula"},
				{DayNumber: 4, HotelID: 7, ActivityIDs: []int64{9}, Notes: "Exploring the stunning islands around Railay"},
				{DayNumber: 5, HotelID: 9, TransferID: int64Ptr(12), ActivityIDs: []int64{11, 15}, Notes: "Final night in Krabi Town with cultural experiences"},
			},
		},
		{
			Name:        "Phuket and Krabi Adventure",
			Description: "An exciting journey through the highlights of both Phuket and Krabi",
			Nights:      7,
			DailyPlans: []itinerary.DailyPlanRequest{
				{DayNumber: 1, HotelID: 1, TransferID: int64Ptr(1), ActivityIDs: []int64{2}, Notes: "Arrival day in Phuket's most popular beach area"},
				{DayNumber: 2, HotelID: 1, ActivityIDs: []int64{14, 5}, Notes: "Cultural day in Phuket"},
				{DayNumber: 3, HotelID: 5, TransferID: int64Ptr(7), ActivityIDs: []int64{6}, Notes: "Journey to the stunning Phi Phi Islands"},
				{DayNumber: 4, HotelID: 5, Notes: "Free day to explore Phi Phi Islands at your own pace"},
				{DayNumber: 5, HotelID: 6, TransferID: int64Ptr(9), ActivityIDs: []int64{7}, Notes: "Transfer to Krabi's beautiful Ao Nang beach area"},
				{DayNumber: 6, HotelID: 7, TransferID: int64Ptr(11), ActivityIDs: []int64{8}, Notes: "Experience the exclusive Railay Peninsula"},
				{DayNumber: 7, HotelID: 9, TransferID: int64Ptr(12), ActivityIDs: []int64{11, 12}, Notes: "Final day exploring Krabi Town's culture and cuisine"},
			},
		},
	}
}

// backfillItinerary builds a deterministic itinerary request for a nights
// value no curated trip covers. Hotels rotate over a region-appropriate
// list, day one gets a fixed arrival transfer and each day gets the first
// activity at its hotel's location (plus the second one on even days).
func backfillItinerary(nights int) itinerary.CreateItineraryRequest {
	var region string
	var hotelIDs []int64
	switch {
	case nights < 4:
		region = "Phuket"
		hotelIDs = []int64{1, 2, 3, 4}
	case nights > 6:
		region = "Krabi"
		hotelIDs = []int64{6, 7, 8, 9}
	default:
		region = "Phuket and Krabi"
		hotelIDs = []int64{1, 2, 3, 4, 6, 7, 8, 9}
	}

	hotels := hotelFixtures()
	activitiesByLocation := make(map[int64][]int64)
	for i, a := range activityFixtures() {
		activitiesByLocation[a.LocationID] = append(activitiesByLocation[a.LocationID], int64(i+1))
	}

	req := itinerary.CreateItineraryRequest{
		Name:        fmt.Sprintf("%d-Night %s Adventure", nights, region),
		Description: fmt.Sprintf("A %d-night journey through the best of %s", nights, region),
		Nights:      nights,
	}

	for day := 1; day <= nights; day++ {
		hotelID := hotelIDs[(day-1)%len(hotelIDs)]
		hotelLocation := hotels[hotelID-1].LocationID

		plan := itinerary.DailyPlanRequest{
			DayNumber: day,
			HotelID:   hotelID,
			Notes:     fmt.Sprintf("Day %d of your %d-night adventure", day, nights),
		}

		if day == 1 {
			if region == "Krabi" {
				plan.TransferID = int64Ptr(10) // Krabi Town to Ao Nang
			} else {
				plan.TransferID = int64Ptr(1) // Phuket Town to Patong
			}
		}

		local := activitiesByLocation[hotelLocation]
		if len(local) > 0 {
			plan.ActivityIDs = append(plan.ActivityIDs, local[0])
			if day%2 == 0 && len(local) > 1 {
				plan.ActivityIDs = append(plan.ActivityIDs, local[1])
			}
		}

		req.DailyPlans = append(req.DailyPlans, plan)
	}

	return req
}
