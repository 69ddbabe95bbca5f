package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"tripcatalog/internal/config"
	"tripcatalog/internal/domain"
	"tripcatalog/internal/modules/itinerary"
)

// ItineraryFinder is the slice of the itinerary facade the assistant reuses;
// both surfaces must agree on query semantics, so it delegates rather than
// querying storage itself.
type ItineraryFinder interface {
	RecommendForNights(ctx context.Context, nights int) (*domain.Itinerary, error)
	RecommendedDurations(ctx context.Context) ([]int, error)
	List(ctx context.Context, f itinerary.ListFilters) ([]domain.Itinerary, error)
}

// resourcePageSize bounds the text resource; recommended itineraries per
// nights value stay in single digits in practice.
const resourcePageSize = 50

type Service struct {
	finder ItineraryFinder
}

func NewService(finder ItineraryFinder) *Service {
	return &Service{finder: finder}
}

// RecommendedItinerary implements the get_recommended_itinerary tool:
// exact nights match first, then any recommended itinerary.
func (s *Service) RecommendedItinerary(ctx context.Context, nights int) (*itinerary.ItineraryResponse, error) {
	if nights < config.MinNights || nights > config.MaxNights {
		return nil, &OutOfRangeError{
			Parameter: "nights",
			Min:       config.MinNights,
			Max:       config.MaxNights,
			Got:       nights,
		}
	}

	it, err := s.finder.RecommendForNights(ctx, nights)
	if err != nil {
		return nil, err
	}

	resp := itinerary.ToItineraryResponse(it)
	return &resp, nil
}

// AvailableDurations implements the list_available_durations tool.
func (s *Service) AvailableDurations(ctx context.Context) ([]int, error) {
	return s.finder.RecommendedDurations(ctx)
}

// ItineraryText renders the itineraries://recommended/{nights} resource.
// Bad input and empty results come back as descriptive text, not errors;
// the resource is read by a language model, not by code.
func (s *Service) ItineraryText(ctx context.Context, nightsRaw string) (string, error) {
	nights, err := strconv.Atoi(strings.TrimSpace(nightsRaw))
	if err != nil {
		return fmt.Sprintf("Invalid input: nights must be a number between %d-%d",
			config.MinNights, config.MaxNights), nil
	}

	if nights < config.MinNights || nights > config.MaxNights {
		return fmt.Sprintf("No recommended itineraries available for %d nights. Please choose between %d-%d nights.",
			nights, config.MinNights, config.MaxNights), nil
	}

	itineraries, err := s.finder.List(ctx, itinerary.ListFilters{
		Nights:          &nights,
		RecommendedOnly: true,
		Limit:           resourcePageSize,
	})
	if err != nil {
		return "", err
	}

	if len(itineraries) == 0 {
		return fmt.Sprintf("No recommended itineraries found for %d nights.", nights), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d recommended itineraries for %d nights:\n\n", len(itineraries), nights)
	for i := range itineraries {
		b.WriteString(itinerary.RenderText(&itineraries[i]))
	}

	return b.String(), nil
}

// NotFound reports whether err is the facade's recommended-itinerary miss;
// the handler translates it into a message rather than a 404.
func NotFound(err error) bool {
	var nf *itinerary.NotFoundError
	return errors.As(err, &nf)
}
