package types

// Ride types offered by the catalog.
const (
	RideTypeUberX     = "UberX"
	RideTypeUberXL    = "UberXL"
	RideTypeUberBlack = "UberBlack"
	RideTypeUberPool  = "UberPool"
)

// RideTypes lists the catalog order.
var RideTypes = []string{RideTypeUberX, RideTypeUberXL, RideTypeUberBlack, RideTypeUberPool}

// TripState is a stage of the booking workflow. Transitions are strictly
// ordered; see internal/service/trip.
type TripState string

const (
	StateUnauthenticated     TripState = "UNAUTHENTICATED"
	StateAuthenticated       TripState = "AUTHENTICATED"
	StateLocationKnown       TripState = "LOCATION_KNOWN"
	StateDestinationSelected TripState = "DESTINATION_SELECTED"
	StateOptionsLoaded       TripState = "OPTIONS_LOADED"
	StateRideSelected        TripState = "RIDE_SELECTED"
	StateBooked              TripState = "BOOKED"
)

// TokenType distinguishes access and refresh JWTs.
type TokenType string

const (
	AccessToken  TokenType = "access"
	RefreshToken TokenType = "refresh"
)

// BookingStatus values.
const (
	BookingStatusConfirmed = "confirmed"
)
