package card

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no card has the requested ID.
	ErrNotFound = errors.New("card not found")

	// ErrInvalidCard is returned when a card breaks a model invariant.
	ErrInvalidCard = errors.New("invalid card")

	// ErrInvalidDate matches every *InvalidDateError.
	ErrInvalidDate = errors.New("invalid date")
)

// InvalidDateError is returned when a value cannot be converted into a day stamp.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q: must be an ISO-8601 date or date-time", e.Value)
}

// Is lets errors.Is(err, ErrInvalidDate) match.
func (e *InvalidDateError) Is(target error) bool {
	return target == ErrInvalidDate
}
