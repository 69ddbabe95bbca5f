package assistant

import "fmt"

// OutOfRangeError reports a tool argument outside its allowed range. It is
// surfaced to callers as a descriptive message, never as an HTTP error code.
type OutOfRangeError struct {
	Parameter string
	Min, Max  int
	Got       int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Parameter, e.Min, e.Max, e.Got)
}
