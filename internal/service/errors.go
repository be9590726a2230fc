package service

import "errors"

// Sentinel errors returned by the service layer. The routing layer maps them
// to transport status codes with errors.Is.
var (
	ErrListingNotFound  = errors.New("listing not found")
	ErrOrderNotFound    = errors.New("order not found")
	ErrInvalidOperation = errors.New("operation violates a business rule")
	ErrListingExpired   = errors.New("listing is past its expiry date")
	ErrValidation       = errors.New("missing or invalid required field")
	ErrNoChange         = errors.New("update is a no-op")
)
