// Package pricing computes simulated fare estimates.
package pricing

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

// Per-type base prices in whole currency units. Unknown types fall back to
// the UberX base.
const (
	baseUberX     = 8
	baseUberXL    = 12
	baseUberBlack = 20
	baseUberPool  = 5
)

// Distance is drawn uniformly from [minDistanceMiles, maxDistanceMiles).
const (
	minDistanceMiles = 2.0
	maxDistanceMiles = 12.0

	pricePerMile       = 1.5
	minutesPerMile     = 3.0
	durationBaseOffset = 5.0
)

// Fallback estimate substituted when live estimation fails for one option.
const (
	fallbackDistance = "5.0 miles"
	fallbackDuration = "15 min"
)

type Estimator struct {
	latency time.Duration
	log     logger.Logger
}

func NewEstimator(latency time.Duration, log logger.Logger) *Estimator {
	return &Estimator{
		latency: latency,
		log:     log,
	}
}

// Estimate produces a price estimate for one ride type between the given
// endpoints. The distance draw is unseeded and non-deterministic; callers
// must not compare exact values across calls. The simulated path never
// returns types.ErrPriceUnavailable, which is reserved for real backends.
func (e *Estimator) Estimate(ctx context.Context, pickup, destination models.Location, rideType string) (*models.PriceEstimate, error) {
	ctx = wrap.WithAction(ctx, "estimate_price")

	if err := simulate.Sleep(ctx, e.latency); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	distance := minDistanceMiles + rand.Float64()*(maxDistanceMiles-minDistanceMiles)
	price := math.Round(BasePrice(rideType) + distance*pricePerMile)
	duration := math.Round(distance*minutesPerMile + durationBaseOffset)

	return &models.PriceEstimate{
		RideType: rideType,
		Price:    fmt.Sprintf("$%.0f", price),
		Distance: fmt.Sprintf("%.1f miles", distance),
		Duration: fmt.Sprintf("%.0f min", duration),
	}, nil
}

// Fallback returns the substitute estimate for an option whose live
// estimation failed: the static catalog price with fixed distance and
// duration labels.
func (e *Estimator) Fallback(option models.RideOption) *models.PriceEstimate {
	return &models.PriceEstimate{
		RideType: option.Type,
		Price:    option.Price,
		Distance: fallbackDistance,
		Duration: fallbackDuration,
	}
}

// BasePrice returns the per-type base price constant.
func BasePrice(rideType string) float64 {
	switch rideType {
	case "UberX":
		return baseUberX
	case "UberXL":
		return baseUberXL
	case "UberBlack":
		return baseUberBlack
	case "UberPool":
		return baseUberPool
	default:
		return baseUberX
	}
}
