package repository

import (
	"context"

	"gorm.io/gorm"

	"tripcatalog/internal/domain"
)

type ItineraryFilters struct {
	Nights          *int
	RecommendedOnly bool
	Offset          int
	Limit           int
}

type ItineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) *ItineraryRepository {
	return &ItineraryRepository{db: db}
}

// aggregatePreloads loads the full aggregate: plans with their hotel,
// transfer and activities, plus the location rows the renderer needs.
func aggregatePreloads(q *gorm.DB) *gorm.DB {
	return q.
		Preload("DailyPlans").
		Preload("DailyPlans.Hotel").
		Preload("DailyPlans.Hotel.Location").
		Preload("DailyPlans.Transfer").
		Preload("DailyPlans.Transfer.Origin").
		Preload("DailyPlans.Transfer.Destination").
		Preload("DailyPlans.Activities")
}

// Create persists the itinerary together with its daily plans and their
// activity associations. gorm writes the whole graph inside one
// transaction, so a failure anywhere leaves no partial aggregate behind.
func (r *ItineraryRepository) Create(ctx context.Context, it *domain.Itinerary) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *ItineraryRepository) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	var it domain.Itinerary

	err := aggregatePreloads(r.db.WithContext(ctx)).
		First(&it, id).Error
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// List applies the equality filters conjunctively and pages with
// offset/limit over insertion (id) order.
func (r *ItineraryRepository) List(ctx context.Context, f ItineraryFilters) ([]domain.Itinerary, error) {
	var itineraries []domain.Itinerary

	q := r.db.WithContext(ctx).Model(&domain.Itinerary{})

	if f.Nights != nil {
		q = q.Where("nights = ?", *f.Nights)
	}
	if f.RecommendedOnly {
		q = q.Where("is_recommended = ?", true)
	}

	err := aggregatePreloads(q).
		Order("id ASC").
		Offset(f.Offset).
		Limit(f.Limit).
		Find(&itineraries).Error

	return itineraries, err
}

// FirstRecommended returns the first recommended itinerary in insertion
// order. nights > 0 restricts to an exact night count; nights <= 0 means any.
func (r *ItineraryRepository) FirstRecommended(ctx context.Context, nights int) (*domain.Itinerary, error) {
	var it domain.Itinerary

	q := r.db.WithContext(ctx).Where("is_recommended = ?", true)
	if nights > 0 {
		q = q.Where("nights = ?", nights)
	}

	err := aggregatePreloads(q).
		Order("id ASC").
		First(&it).Error
	if err != nil {
		return nil, err
	}

	return &it, nil
}

// RecommendedNights returns the distinct nights values across recommended
// itineraries.
func (r *ItineraryRepository) RecommendedNights(ctx context.Context) ([]int, error) {
	var nights []int

	err := r.db.WithContext(ctx).
		Model(&domain.Itinerary{}).
		Where("is_recommended = ?", true).
		Distinct().
		Order("nights ASC").
		Pluck("nights", &nights).Error

	return nights, err
}

// MarkRecommended flips the recommended flag; used by the seeder only.
func (r *ItineraryRepository) MarkRecommended(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Itinerary{}).
		Where("id = ?", id).
		Update("is_recommended", true).Error
}
