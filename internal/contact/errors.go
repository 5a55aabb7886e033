package contact

import "errors"

var (
	ErrMissingName    = errors.New("contact: first name is required")
	ErrInvalidEmail   = errors.New("contact: a valid email is required")
	ErrMissingService = errors.New("contact: bookings require a service")
	ErrMissingMessage = errors.New("contact: contact requests require a message")
	ErrInvalidType    = errors.New("contact: type must be booking or contact")
	ErrNotFound       = errors.New("contact: not found")
)
