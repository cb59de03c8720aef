package types

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrLocationUnavailable is reserved for real geolocation backends.
	// The simulated provider never returns it.
	ErrLocationUnavailable = errors.New("location unavailable")

	// ErrPriceUnavailable is recovered per option via the fallback estimate
	// and never surfaces to the caller of the workflow.
	ErrPriceUnavailable = errors.New("price unavailable")

	ErrCatalogUnavailable = errors.New("ride catalog unavailable")
	ErrBookingFailed      = errors.New("failed to book ride")

	ErrInvalidTransition = errors.New("operation not allowed in current trip state")
	ErrSessionNotFound   = errors.New("trip session not found")
	ErrRideTypeUnknown   = errors.New("unknown ride type")
	ErrNotFound          = errors.New("requested item not found")
)
