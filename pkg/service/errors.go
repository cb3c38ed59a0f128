package service

import (
	"errors"
)

// Validation errors map to HTTP 400 at the handler boundary. The first
// two messages are part of the wire contract the storefront frontend
// already matches on.
var (
	ErrPhoneRequired      = errors.New("Phone number required")
	ErrOrderFieldsMissing = errors.New("Phone and items required")
	ErrInvalidLimit       = errors.New("limit must be a positive integer")
	ErrInvalidQuantity    = errors.New("item quantity must be at least 1")
	ErrInvalidPrice       = errors.New("item price must not be negative")
	ErrInvalidDiscount    = errors.New("discount_percent must be between 0 and 100")
)

var validationErrors = []error{
	ErrPhoneRequired,
	ErrOrderFieldsMissing,
	ErrInvalidLimit,
	ErrInvalidQuantity,
	ErrInvalidPrice,
	ErrInvalidDiscount,
}

// IsValidation reports whether err is a client mistake rather than a
// storefront fault.
func IsValidation(err error) bool {
	for _, verr := range validationErrors {
		if errors.Is(err, verr) {
			return true
		}
	}
	return false
}
