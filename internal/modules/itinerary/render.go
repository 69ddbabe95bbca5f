package itinerary

import (
	"fmt"
	"sort"
	"strings"

	"tripcatalog/internal/domain"
)

// RenderText produces the human-readable itinerary used by the assistant
// resource. Daily plans are rendered in ascending day order; the sort
// matters because plans are not stored in day order.
func RenderText(it *domain.Itinerary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Itinerary: %s\n", it.Name)
	fmt.Fprintf(&b, "Description: %s\n", it.Description)
	fmt.Fprintf(&b, "Total Price: $%.2f\n", it.TotalPrice)
	fmt.Fprintf(&b, "Number of daily plans: %d\n\n", len(it.DailyPlans))

	plans := make([]domain.DailyPlan, len(it.DailyPlans))
	copy(plans, it.DailyPlans)
	sort.Slice(plans, func(i, j int) bool {
		return plans[i].DayNumber < plans[j].DayNumber
	})

	for _, plan := range plans {
		fmt.Fprintf(&b, "Day %d:\n", plan.DayNumber)

		if plan.Hotel != nil {
			locationName := ""
			if plan.Hotel.Location != nil {
				locationName = plan.Hotel.Location.Name
			}
			fmt.Fprintf(&b, "  Stay at %s (%.1f stars) in %s\n",
				plan.Hotel.Name, plan.Hotel.StarRating, locationName)
		}

		if plan.Transfer != nil {
			originName, destinationName := "", ""
			if plan.Transfer.Origin != nil {
				originName = plan.Transfer.Origin.Name
			}
			if plan.Transfer.Destination != nil {
				destinationName = plan.Transfer.Destination.Name
			}
			fmt.Fprintf(&b, "  Transfer: %s from %s to %s (%.1f hours)\n",
				plan.Transfer.TransferType, originName, destinationName, plan.Transfer.Duration)
		}

		if len(plan.Activities) > 0 {
			b.WriteString("  Activities:\n")
			for _, a := range plan.Activities {
				fmt.Fprintf(&b, "    - %s (%.1f hours)\n", a.Name, a.Duration)
			}
		}

		if plan.Notes != "" {
			fmt.Fprintf(&b, "  Notes: %s\n", plan.Notes)
		}

		b.WriteString("\n")
	}

	return b.String()
}
