package pricing

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
)

var (
	testPickup      = models.Location{Latitude: 37.7749, Longitude: -122.4194, Address: "San Francisco, CA"}
	testDestination = models.Location{Latitude: 37.8044, Longitude: -122.2712, Address: "Oakland, CA"}
)

// parseDollars turns "$13" into 13.
func parseDollars(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimPrefix(s, "$"), 64)
	if err != nil {
		t.Fatalf("cannot parse price %q: %v", s, err)
	}
	return v
}

// parseMiles turns "7.3 miles" into 7.3.
func parseMiles(t *testing.T, s string) float64 {
	t.Helper()
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, " miles"), 64)
	if err != nil {
		t.Fatalf("cannot parse distance %q: %v", s, err)
	}
	return v
}

func TestEstimate_Ranges(t *testing.T) {
	e := NewEstimator(0, logger.InitLogger("test", logger.LevelError))

	// The distance draw is random; exercise each type repeatedly and assert
	// the invariants that hold for every draw.
	for _, rideType := range types.RideTypes {
		t.Run(rideType, func(t *testing.T) {
			for i := 0; i < 50; i++ {
				est, err := e.Estimate(context.Background(), testPickup, testDestination, rideType)
				if err != nil {
					t.Fatalf("Estimate() unexpected error: %v", err)
				}
				if est.RideType != rideType {
					t.Fatalf("estimate ride type = %q, want %q", est.RideType, rideType)
				}

				distance := parseMiles(t, est.Distance)
				if distance < minDistanceMiles || distance >= maxDistanceMiles+0.05 {
					t.Fatalf("distance %.1f outside [%.1f, %.1f)", distance, minDistanceMiles, maxDistanceMiles)
				}

				price := parseDollars(t, est.Price)
				lo := BasePrice(rideType) + minDistanceMiles*pricePerMile
				hi := BasePrice(rideType) + maxDistanceMiles*pricePerMile
				if price < lo-0.5 || price > hi+0.5 {
					t.Fatalf("price %.0f outside [%.1f, %.1f] for %s", price, lo, hi, rideType)
				}

				duration, err := strconv.ParseFloat(strings.TrimSuffix(est.Duration, " min"), 64)
				if err != nil {
					t.Fatalf("cannot parse duration %q: %v", est.Duration, err)
				}
				durLo := minDistanceMiles*minutesPerMile + durationBaseOffset
				durHi := maxDistanceMiles*minutesPerMile + durationBaseOffset
				if duration < durLo-0.5 || duration > durHi+0.5 {
					t.Fatalf("duration %.0f outside [%.1f, %.1f]", duration, durLo, durHi)
				}
			}
		})
	}
}

func TestEstimate_UnknownTypeUsesDefaultBase(t *testing.T) {
	if got := BasePrice("UberSpace"); got != baseUberX {
		t.Fatalf("BasePrice(unknown) = %v, want %v", got, float64(baseUberX))
	}
}

func TestEstimate_CancelledContext(t *testing.T) {
	e := NewEstimator(0, logger.InitLogger("test", logger.LevelError))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Estimate(ctx, testPickup, testDestination, types.RideTypeUberX); err == nil {
		t.Fatal("Estimate() with cancelled context must fail")
	}
}

func TestFallback(t *testing.T) {
	e := NewEstimator(0, logger.InitLogger("test", logger.LevelError))

	option := models.RideOption{
		ID:    3,
		Type:  types.RideTypeUberBlack,
		Price: "$28",
	}

	est := e.Fallback(option)
	if est.Price != "$28" {
		t.Errorf("fallback price = %q, want catalog price %q", est.Price, "$28")
	}
	if est.Distance != fallbackDistance {
		t.Errorf("fallback distance = %q, want %q", est.Distance, fallbackDistance)
	}
	if est.Duration != fallbackDuration {
		t.Errorf("fallback duration = %q, want %q", est.Duration, fallbackDuration)
	}
	if est.RideType != option.Type {
		t.Errorf("fallback ride type = %q, want %q", est.RideType, option.Type)
	}
}
