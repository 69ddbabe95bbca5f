package domain

// Itinerary is the aggregate root: a named multi-night trip made of daily
// plans. TotalPrice is derived by the composer and stored denormalized.
type Itinerary struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name" validate:"required" gorm:"size:100;not null"`
	Description   string  `json:"description,omitempty" gorm:"type:text"`
	Nights        int     `json:"nights" validate:"required,gt=0" gorm:"not null"`
	TotalPrice    float64 `json:"total_price"`
	IsRecommended bool    `json:"is_recommended" gorm:"default:false"`

	DailyPlans []DailyPlan `json:"daily_plans,omitempty" gorm:"foreignKey:ItineraryID;constraint:OnDelete:CASCADE"`
}

func (Itinerary) TableName() string { return "itineraries" }

// DailyPlan belongs to exactly one itinerary for its lifetime. The hotel is
// required, the transfer optional, activities many-to-many through
// daily_plan_activity.
type DailyPlan struct {
	ID          int64  `json:"id"`
	DayNumber   int    `json:"day_number" validate:"required,gt=0" gorm:"not null"`
	ItineraryID int64  `json:"itinerary_id" gorm:"not null"`
	HotelID     int64  `json:"hotel_id" validate:"required" gorm:"not null"`
	TransferID  *int64 `json:"transfer_id,omitempty"`
	Notes       string `json:"notes,omitempty" gorm:"type:text"`

	Hotel      *Hotel     `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
	Transfer   *Transfer  `json:"transfer,omitempty" gorm:"foreignKey:TransferID"`
	Activities []Activity `json:"activities,omitempty" gorm:"many2many:daily_plan_activity"`
}

func (DailyPlan) TableName() string { return "daily_plans" }
