package dto

import (
	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/validator"
)

// DestinationRequest is a map tap, or "use current location" when the flag
// is set (coordinates are then ignored).
type DestinationRequest struct {
	Latitude           float64 `json:"latitude"`
	Longitude          float64 `json:"longitude"`
	Address            string  `json:"address"`
	UseCurrentLocation bool    `json:"use_current_location"`
}

func ValidateDestination(v *validator.Validator, r *DestinationRequest) {
	if r.UseCurrentLocation {
		return
	}

	v.Check(r.Latitude >= -90 && r.Latitude <= 90, "latitude", "must be between -90 and 90")
	v.Check(r.Longitude >= -180 && r.Longitude <= 180, "longitude", "must be between -180 and 180")
	v.Check(r.Address != "", "address", "must be provided")
	v.Check(len(r.Address) <= 255, "address", "must not be more than 255 characters long")
}

func (r *DestinationRequest) ToModel() models.Location {
	return models.Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Address:   r.Address,
	}
}

type SelectRideRequest struct {
	RideType string `json:"ride_type"`
}

func ValidateSelectRide(v *validator.Validator, r *SelectRideRequest) {
	v.Check(r.RideType != "", "ride_type", "must be provided")
	if r.RideType != "" {
		v.Check(
			validator.PermittedValue(r.RideType, types.RideTypes...),
			"ride_type",
			"must be one of UberX, UberXL, UberBlack, or UberPool",
		)
	}
}
