// Package catalog serves the static ride-type offerings.
package catalog

import (
	"context"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

// rideOptions is the fixed ordered catalog.
var rideOptions = []models.RideOption{
	{
		ID:          1,
		Type:        types.RideTypeUberX,
		Price:       "$12",
		Wait:        "3 min",
		Description: "Affordable, everyday rides",
		Capacity:    "4 seats",
	},
	{
		ID:          2,
		Type:        types.RideTypeUberXL,
		Price:       "$18",
		Wait:        "5 min",
		Description: "Extra space for up to 6",
		Capacity:    "6 seats",
	},
	{
		ID:          3,
		Type:        types.RideTypeUberBlack,
		Price:       "$28",
		Wait:        "8 min",
		Description: "Premium rides with professional drivers",
		Capacity:    "4 seats",
	},
	{
		ID:          4,
		Type:        types.RideTypeUberPool,
		Price:       "$8",
		Wait:        "6 min",
		Description: "Share your ride, split the cost",
		Capacity:    "2 seats",
	},
}

type CatalogService struct {
	latency time.Duration
	log     logger.Logger
}

func NewCatalogService(latency time.Duration, log logger.Logger) *CatalogService {
	return &CatalogService{
		latency: latency,
		log:     log,
	}
}

// Options returns the fixed ordered sequence of ride options after a
// simulated delay. Idempotent; callers get their own copy.
func (s *CatalogService) Options(ctx context.Context) ([]models.RideOption, error) {
	ctx = wrap.WithAction(ctx, "fetch_ride_options")

	if err := simulate.Sleep(ctx, s.latency); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	options := make([]models.RideOption, len(rideOptions))
	copy(options, rideOptions)
	return options, nil
}
