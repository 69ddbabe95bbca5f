package itinerary

import (
	"context"

	"tripcatalog/internal/domain"
	"tripcatalog/internal/repository"
)

// ItineraryRepository is the write/read side for the itinerary aggregate.
type ItineraryRepository interface {
	Create(ctx context.Context, it *domain.Itinerary) error
	GetByID(ctx context.Context, id int64) (*domain.Itinerary, error)
	List(ctx context.Context, f repository.ItineraryFilters) ([]domain.Itinerary, error)
	FirstRecommended(ctx context.Context, nights int) (*domain.Itinerary, error)
	RecommendedNights(ctx context.Context) ([]int, error)
}

// CatalogRepository resolves the reference entities a plan points at.
type CatalogRepository interface {
	HotelsByIDs(ctx context.Context, ids []int64) ([]domain.Hotel, error)
	TransfersByIDs(ctx context.Context, ids []int64) ([]domain.Transfer, error)
	ActivitiesByIDs(ctx context.Context, ids []int64) ([]domain.Activity, error)
}
