package domain

// Location is a reference place in the catalog (beach, town, island).
// Rows are created once by seeding and read thereafter.
type Location struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name" validate:"required" gorm:"size:100;not null"`
	Region      string   `json:"region" validate:"required" gorm:"size:100;not null"` // e.g. "Phuket", "Krabi"
	Description string   `json:"description,omitempty" gorm:"type:text"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func (Location) TableName() string { return "locations" }

type Hotel struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name" validate:"required" gorm:"size:100;not null"`
	Description   string  `json:"description,omitempty" gorm:"type:text"`
	StarRating    float64 `json:"star_rating"`
	LocationID    int64   `json:"location_id" validate:"required" gorm:"not null"`
	Address       string  `json:"address,omitempty" gorm:"size:200"`
	PricePerNight float64 `json:"price_per_night" validate:"gte=0"`
	Amenities     string  `json:"amenities,omitempty" gorm:"type:text"` // comma-separated
	ImageURL      string  `json:"image_url,omitempty" gorm:"size:255"`

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (Hotel) TableName() string { return "hotels" }

type Activity struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name" validate:"required" gorm:"size:100;not null"`
	Description  string  `json:"description,omitempty" gorm:"type:text"`
	Duration     float64 `json:"duration" validate:"gt=0"` // hours
	Price        float64 `json:"price" validate:"gte=0"`
	LocationID   int64   `json:"location_id" validate:"required" gorm:"not null"`
	ImageURL     string  `json:"image_url,omitempty" gorm:"size:255"`
	ActivityType string  `json:"activity_type,omitempty" gorm:"size:50"` // e.g. "Boat Tour"

	Location *Location `json:"location,omitempty" gorm:"foreignKey:LocationID"`
}

func (Activity) TableName() string { return "activities" }

// Transfer connects two locations. Origin == destination is not forbidden;
// the catalog mirrors whatever the operator sells.
type Transfer struct {
	ID            int64   `json:"id"`
	OriginID      int64   `json:"origin_id" validate:"required" gorm:"not null"`
	DestinationID int64   `json:"destination_id" validate:"required" gorm:"not null"`
	TransferType  string  `json:"transfer_type,omitempty" gorm:"size:50"` // e.g. "Car", "Ferry"
	Duration      float64 `json:"duration"`                               // hours
	Price         float64 `json:"price" validate:"gte=0"`
	Description   string  `json:"description,omitempty" gorm:"type:text"`

	Origin      *Location `json:"origin,omitempty" gorm:"foreignKey:OriginID"`
	Destination *Location `json:"destination,omitempty" gorm:"foreignKey:DestinationID"`
}

func (Transfer) TableName() string { return "transfers" }
