package booking

import (
	"errors"
	"fmt"
)

var (
	ErrExperienceNotFound = errors.New("experience not found")
	ErrDateUnavailable    = errors.New("selected date not available")
	ErrTimeUnavailable    = errors.New("selected time not available")
	ErrReferenceConflict  = errors.New("could not assign a unique booking reference")
)

// CapacityError rejects a booking that asks for more spots than the slot has
// left. Remaining is the live count at the moment the decrement failed.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("only %d spots available for this time slot", e.Remaining)
}
