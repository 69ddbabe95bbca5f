package catalog

import "tripcatalog/internal/domain"

type LocationResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

func toLocationResponse(l domain.Location) LocationResponse {
	return LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		Region:      l.Region,
		Description: l.Description,
		Latitude:    l.Latitude,
		Longitude:   l.Longitude,
	}
}
