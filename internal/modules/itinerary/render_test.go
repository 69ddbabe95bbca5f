package itinerary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripcatalog/internal/domain"
)

func renderFixture() *domain.Itinerary {
	patong := &domain.Location{ID: 1, Name: "Patong Beach", Region: "Phuket"}
	kata := &domain.Location{ID: 3, Name: "Kata Beach", Region: "Phuket"}

	transferID := int64(5)

	// Plans deliberately out of day order: rendering must sort them.
	return &domain.Itinerary{
		ID:          1,
		Name:        "Phuket Getaway",
		Description: "Beaches and nightlife",
		Nights:      3,
		TotalPrice:  310.0,
		DailyPlans: []domain.DailyPlan{
			{
				DayNumber: 3,
				Hotel:     &domain.Hotel{Name: "Kata Palm Resort & Spa", StarRating: 4.0, Location: kata},
				Transfer: &domain.Transfer{
					TransferType: "Car",
					Duration:     0.5,
					Origin:       patong,
					Destination:  kata,
				},
				TransferID: &transferID,
				Activities: []domain.Activity{{Name: "Surf Lesson at Kata Beach", Duration: 3.0}},
				Notes:      "Change of scenery",
			},
			{
				DayNumber: 1,
				Hotel:     &domain.Hotel{Name: "Patong Resort Hotel", StarRating: 4.0, Location: patong},
				Notes:     "Arrival day",
			},
			{
				DayNumber:  2,
				Hotel:      &domain.Hotel{Name: "Patong Resort Hotel", StarRating: 4.0, Location: patong},
				Activities: []domain.Activity{{Name: "Bangla Road Night Experience", Duration: 4.0}},
			},
		},
	}
}

func TestRenderText_SortsPlansByDayNumber(t *testing.T) {
	text := RenderText(renderFixture())

	day1 := strings.Index(text, "Day 1:")
	day2 := strings.Index(text, "Day 2:")
	day3 := strings.Index(text, "Day 3:")

	require.NotEqual(t, -1, day1)
	require.NotEqual(t, -1, day2)
	require.NotEqual(t, -1, day3)

	assert.Less(t, day1, day2)
	assert.Less(t, day2, day3)
}

func TestRenderText_Header(t *testing.T) {
	text := RenderText(renderFixture())

	assert.True(t, strings.HasPrefix(text, "Itinerary: Phuket Getaway\n"))
	assert.Contains(t, text, "Description: Beaches and nightlife\n")
	assert.Contains(t, text, "Total Price: $310.00\n")
	assert.Contains(t, text, "Number of daily plans: 3\n")
}

func TestRenderText_PlanBlocks(t *testing.T) {
	text := RenderText(renderFixture())

	assert.Contains(t, text, "Stay at Kata Palm Resort & Spa (4.0 stars) in Kata Beach")
	assert.Contains(t, text, "Transfer: Car from Patong Beach to Kata Beach (0.5 hours)")
	assert.Contains(t, text, "- Surf Lesson at Kata Beach (3.0 hours)")
	assert.Contains(t, text, "Notes: Change of scenery")

	// Day 2 has no transfer and no notes; its block should not mention them.
	day2 := text[strings.Index(text, "Day 2:"):strings.Index(text, "Day 3:")]
	assert.NotContains(t, day2, "Transfer:")
	assert.NotContains(t, day2, "Notes:")
	assert.Contains(t, day2, "- Bangla Road Night Experience (4.0 hours)")
}

func TestRenderText_Deterministic(t *testing.T) {
	a := RenderText(renderFixture())
	b := RenderText(renderFixture())
	assert.Equal(t, a, b)
}
