package itinerary

import (
	"context"
	"errors"
	"math"

	"gorm.io/gorm"

	"tripcatalog/internal/domain"
	"tripcatalog/internal/repository"
)

type ListFilters struct {
	Nights          *int
	RecommendedOnly bool
	Skip            int
	Limit           int
}

type Service struct {
	itineraries ItineraryRepository
	catalog     CatalogRepository
}

func NewService(itineraries ItineraryRepository, catalog CatalogRepository) *Service {
	return &Service{itineraries: itineraries, catalog: catalog}
}

// Compose validates every reference in the request against the catalog,
// builds the aggregate in input order and persists it as one unit. The only
// validation it performs is referential: day numbers are not checked for
// uniqueness and nights is not compared to the plan count, matching the
// external contract.
func (s *Service) Compose(ctx context.Context, req CreateItineraryRequest) (*domain.Itinerary, error) {
	hotelIDs := collectIDs(req.DailyPlans, func(p DailyPlanRequest) []int64 {
		return []int64{p.HotelID}
	})
	transferIDs := collectIDs(req.DailyPlans, func(p DailyPlanRequest) []int64 {
		if p.TransferID != nil {
			return []int64{*p.TransferID}
		}
		return nil
	})
	activityIDs := collectIDs(req.DailyPlans, func(p DailyPlanRequest) []int64 {
		return p.ActivityIDs
	})

	hotels, err := s.catalog.HotelsByIDs(ctx, hotelIDs)
	if err != nil {
		return nil, err
	}
	hotelByID := make(map[int64]domain.Hotel, len(hotels))
	for _, h := range hotels {
		hotelByID[h.ID] = h
	}
	if len(hotels) != len(hotelIDs) {
		return nil, &ReferenceNotFoundError{Kind: "hotel", MissingIDs: missingIDs(hotelIDs, func(id int64) bool {
			_, ok := hotelByID[id]
			return ok
		})}
	}

	transferByID := make(map[int64]domain.Transfer)
	if len(transferIDs) > 0 {
		transfers, err := s.catalog.TransfersByIDs(ctx, transferIDs)
		if err != nil {
			return nil, err
		}
		for _, t := range transfers {
			transferByID[t.ID] = t
		}
		if len(transfers) != len(transferIDs) {
			return nil, &ReferenceNotFoundError{Kind: "transfer", MissingIDs: missingIDs(transferIDs, func(id int64) bool {
				_, ok := transferByID[id]
				return ok
			})}
		}
	}

	activityByID := make(map[int64]domain.Activity)
	if len(activityIDs) > 0 {
		activities, err := s.catalog.ActivitiesByIDs(ctx, activityIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range activities {
			activityByID[a.ID] = a
		}
		if len(activities) != len(activityIDs) {
			return nil, &ReferenceNotFoundError{Kind: "activity", MissingIDs: missingIDs(activityIDs, func(id int64) bool {
				_, ok := activityByID[id]
				return ok
			})}
		}
	}

	it := &domain.Itinerary{
		Name:        req.Name,
		Description: req.Description,
		Nights:      req.Nights,
		DailyPlans:  make([]domain.DailyPlan, 0, len(req.DailyPlans)),
	}

	var total float64
	for _, planReq := range req.DailyPlans {
		plan := domain.DailyPlan{
			DayNumber:  planReq.DayNumber,
			HotelID:    planReq.HotelID,
			TransferID: planReq.TransferID,
			Notes:      planReq.Notes,
		}

		total += hotelByID[planReq.HotelID].PricePerNight

		if planReq.TransferID != nil {
			total += transferByID[*planReq.TransferID].Price
		}

		// An activity appears at most once per plan; a repeated id in a
		// plan request resolves to the same join row and is priced once.
		plan.Activities = make([]domain.Activity, 0, len(planReq.ActivityIDs))
		onPlan := make(map[int64]struct{}, len(planReq.ActivityIDs))
		for _, id := range planReq.ActivityIDs {
			if _, ok := onPlan[id]; ok {
				continue
			}
			onPlan[id] = struct{}{}
			a := activityByID[id]
			plan.Activities = append(plan.Activities, a)
			total += a.Price
		}

		it.DailyPlans = append(it.DailyPlans, plan)
	}

	// Single rounding rule: once, after full summation.
	it.TotalPrice = math.Round(total*100) / 100

	if err := s.itineraries.Create(ctx, it); err != nil {
		return nil, err
	}

	return it, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Itinerary, error) {
	it, err := s.itineraries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "itinerary", ID: id}
		}
		return nil, err
	}
	return it, nil
}

func (s *Service) List(ctx context.Context, f ListFilters) ([]domain.Itinerary, error) {
	return s.itineraries.List(ctx, repository.ItineraryFilters{
		Nights:          f.Nights,
		RecommendedOnly: f.RecommendedOnly,
		Offset:          f.Skip,
		Limit:           f.Limit,
	})
}

// RecommendForNights prefers an exact nights match but deliberately falls
// back to any recommended itinerary so a conversational caller always gets
// an answer while at least one recommendation exists.
func (s *Service) RecommendForNights(ctx context.Context, nights int) (*domain.Itinerary, error) {
	it, err := s.itineraries.FirstRecommended(ctx, nights)
	if err == nil {
		return it, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	it, err = s.itineraries.FirstRecommended(ctx, 0)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "recommended itinerary"}
		}
		return nil, err
	}
	return it, nil
}

func (s *Service) RecommendedDurations(ctx context.Context) ([]int, error) {
	return s.itineraries.RecommendedNights(ctx)
}

// collectIDs gathers the distinct ids yielded by pick, preserving first-seen
// order so one batched lookup per kind can be issued.
func collectIDs(plans []DailyPlanRequest, pick func(DailyPlanRequest) []int64) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, p := range plans {
		for _, id := range pick(p) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

func missingIDs(requested []int64, found func(int64) bool) []int64 {
	var missing []int64
	for _, id := range requested {
		if !found(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
