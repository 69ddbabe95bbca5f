package catalog

import (
	"context"

	"tripcatalog/internal/domain"
)

// LocationReader is the slice of the catalog repository this module needs.
type LocationReader interface {
	Locations(ctx context.Context, region string) ([]domain.Location, error)
}

type Service struct {
	locations LocationReader
}

func NewService(locations LocationReader) *Service {
	return &Service{locations: locations}
}

// Locations lists the catalog's locations, optionally filtered by region
// ("Phuket", "Krabi", ...).
func (s *Service) Locations(ctx context.Context, region string) ([]LocationResponse, error) {
	rows, err := s.locations.Locations(ctx, region)
	if err != nil {
		return nil, err
	}

	resp := make([]LocationResponse, 0, len(rows))
	for _, l := range rows {
		resp = append(resp, toLocationResponse(l))
	}
	return resp, nil
}
