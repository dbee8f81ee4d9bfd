package appointments

import (
	"errors"
	"fmt"
)

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInvalidStatus is returned when an update carries a status outside
	// the pending/confirmed/completed/cancelled set
	ErrInvalidStatus = errors.New("status must be one of pending, confirmed, completed, cancelled")
)

// ValidationError reports a missing required booking field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// IsValidationError reports whether err is a request validation failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve) || errors.Is(err, ErrInvalidStatus)
}
