package repository

import (
	"context"

	"gorm.io/gorm"

	"tripcatalog/internal/domain"
)

// CatalogRepository is the read side for the reference entities. Rows are
// written only by the seeder, so no update/delete methods are exposed.
type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// HotelsByIDs returns the hotels matching ids. Callers compare the result
// count against len(ids) to detect dangling references.
func (r *CatalogRepository) HotelsByIDs(ctx context.Context, ids []int64) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&hotels).Error
	return hotels, err
}

func (r *CatalogRepository) TransfersByIDs(ctx context.Context, ids []int64) ([]domain.Transfer, error) {
	var transfers []domain.Transfer
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&transfers).Error
	return transfers, err
}

func (r *CatalogRepository) ActivitiesByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error) {
	var activities []domain.Activity
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&activities).Error
	return activities, err
}

// Locations returns all locations, optionally restricted to one region.
func (r *CatalogRepository) Locations(ctx context.Context, region string) ([]domain.Location, error) {
	var locations []domain.Location

	q := r.db.WithContext(ctx).Model(&domain.Location{})
	if region != "" {
		q = q.Where("region = ?", region)
	}

	err := q.Order("id ASC").Find(&locations).Error
	return locations, err
}
