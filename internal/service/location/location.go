// Package location supplies the simulated current location.
package location

import (
	"context"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

// currentLocation is the fixed value every fetch resolves to.
var currentLocation = models.Location{
	Latitude:  37.7749,
	Longitude: -122.4194,
	Address:   "San Francisco, CA",
}

type LocationService struct {
	latency time.Duration
	log     logger.Logger
}

func NewLocationService(latency time.Duration, log logger.Logger) *LocationService {
	return &LocationService{
		latency: latency,
		log:     log,
	}
}

// Current returns the device location after a simulated delay. The simulated
// path never fails; types.ErrLocationUnavailable exists for symmetry with
// real geolocation backends.
func (s *LocationService) Current(ctx context.Context) (*models.Location, error) {
	ctx = wrap.WithAction(ctx, "fetch_current_location")

	if err := simulate.Sleep(ctx, s.latency); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	loc := currentLocation
	return &loc, nil
}
