package booking

import "errors"

// Validation errors. These block the capture before any write happens and
// are surfaced to the user with a specific message.
var (
	ErrEmptyName       = errors.New("contact name must not be empty")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidPax      = errors.New("pax must be at least 1")
	ErrPackageNotFound = errors.New("package not found or not bookable")
)
