package itinerary

import "fmt"

// ReferenceNotFoundError reports that a compose request referenced catalog
// rows that do not exist. Kind is "hotel", "transfer" or "activity".
type ReferenceNotFoundError struct {
	Kind       string
	MissingIDs []int64
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("one or more %s IDs not found: %v", e.Kind, e.MissingIDs)
}

// NotFoundError reports a failed point lookup.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Entity)
}
