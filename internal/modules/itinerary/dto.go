package itinerary

import "tripcatalog/internal/domain"

// ---------- REQUESTS ----------

type DailyPlanRequest struct {
	DayNumber   int     `json:"day_number" validate:"required,gt=0"`
	HotelID     int64   `json:"hotel_id" validate:"required"`
	TransferID  *int64  `json:"transfer_id,omitempty"`
	ActivityIDs []int64 `json:"activity_ids"`
	Notes       string  `json:"notes,omitempty"`
}

type CreateItineraryRequest struct {
	Name        string             `json:"name" validate:"required"`
	Description string             `json:"description"`
	Nights      int                `json:"nights" validate:"required,gt=0"`
	DailyPlans  []DailyPlanRequest `json:"daily_plans" validate:"required,min=1,dive"`
}

// ---------- RESPONSES ----------

// Response DTOs are built here so the storage representation never leaks
// into the HTTP or assistant surfaces.

type HotelResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StarRating    float64 `json:"star_rating"`
	LocationID    int64   `json:"location_id"`
	Address       string  `json:"address,omitempty"`
	PricePerNight float64 `json:"price_per_night"`
	Amenities     string  `json:"amenities,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
}

type TransferResponse struct {
	ID            int64   `json:"id"`
	OriginID      int64   `json:"origin_id"`
	DestinationID int64   `json:"destination_id"`
	TransferType  string  `json:"transfer_type"`
	Duration      float64 `json:"duration"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
}

type ActivityResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	Duration     float64 `json:"duration"`
	Price        float64 `json:"price"`
	LocationID   int64   `json:"location_id"`
	ActivityType string  `json:"activity_type,omitempty"`
	ImageURL     string  `json:"image_url,omitempty"`
}

type DailyPlanResponse struct {
	ID         int64              `json:"id"`
	DayNumber  int                `json:"day_number"`
	Hotel      HotelResponse      `json:"hotel"`
	Transfer   *TransferResponse  `json:"transfer,omitempty"`
	Activities []ActivityResponse `json:"activities"`
	Notes      string             `json:"notes,omitempty"`
}

type ItineraryResponse struct {
	ID            int64               `json:"id"`
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	Nights        int                 `json:"nights"`
	TotalPrice    float64             `json:"total_price"`
	IsRecommended bool                `json:"is_recommended"`
	DailyPlans    []DailyPlanResponse `json:"daily_plans"`
}

func toHotelResponse(h *domain.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		StarRating:    h.StarRating,
		LocationID:    h.LocationID,
		Address:       h.Address,
		PricePerNight: h.PricePerNight,
		Amenities:     h.Amenities,
		ImageURL:      h.ImageURL,
	}
}

func toTransferResponse(t *domain.Transfer) *TransferResponse {
	if t == nil {
		return nil
	}
	return &TransferResponse{
		ID:            t.ID,
		OriginID:      t.OriginID,
		DestinationID: t.DestinationID,
		TransferType:  t.TransferType,
		Duration:      t.Duration,
		Price:         t.Price,
		Description:   t.Description,
	}
}

func toActivityResponse(a domain.Activity) ActivityResponse {
	return ActivityResponse{
		ID:           a.ID,
		Name:         a.Name,
		Description:  a.Description,
		Duration:     a.Duration,
		Price:        a.Price,
		LocationID:   a.LocationID,
		ActivityType: a.ActivityType,
		ImageURL:     a.ImageURL,
	}
}

func toDailyPlanResponse(p domain.DailyPlan) DailyPlanResponse {
	resp := DailyPlanResponse{
		ID:         p.ID,
		DayNumber:  p.DayNumber,
		Activities: make([]ActivityResponse, 0, len(p.Activities)),
		Notes:      p.Notes,
	}
	if p.Hotel != nil {
		resp.Hotel = toHotelResponse(p.Hotel)
	}
	resp.Transfer = toTransferResponse(p.Transfer)
	for _, a := range p.Activities {
		resp.Activities = append(resp.Activities, toActivityResponse(a))
	}
	return resp
}

func ToItineraryResponse(it *domain.Itinerary) ItineraryResponse {
	resp := ItineraryResponse{
		ID:            it.ID,
		Name:          it.Name,
		Description:   it.Description,
		Nights:        it.Nights,
		TotalPrice:    it.TotalPrice,
		IsRecommended: it.IsRecommended,
		DailyPlans:    make([]DailyPlanResponse, 0, len(it.DailyPlans)),
	}
	for _, p := range it.DailyPlans {
		resp.DailyPlans = append(resp.DailyPlans, toDailyPlanResponse(p))
	}
	return resp
}
