// Package history serves the static past-ride list.
package history

import (
	"context"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

// rideHistory is fixed, newest first.
var rideHistory = []models.RideHistoryEntry{
	{
		ID:     1,
		Date:   "2024-01-15",
		From:   "Home",
		To:     "Office",
		Type:   types.RideTypeUberX,
		Price:  "$12",
		Status: "completed",
	},
	{
		ID:     2,
		Date:   "2024-01-14",
		From:   "Airport",
		To:     "Hotel",
		Type:   types.RideTypeUberBlack,
		Price:  "$35",
		Status: "completed",
	},
	{
		ID:     3,
		Date:   "2024-01-13",
		From:   "Restaurant",
		To:     "Home",
		Type:   types.RideTypeUberX,
		Price:  "$8",
		Status: "completed",
	},
}

type HistoryService struct {
	latency time.Duration
	log     logger.Logger
}

func NewHistoryService(latency time.Duration, log logger.Logger) *HistoryService {
	return &HistoryService{
		latency: latency,
		log:     log,
	}
}

// Rides returns the fixed ride history after a simulated delay. Idempotent;
// callers get their own copy.
func (s *HistoryService) Rides(ctx context.Context) ([]models.RideHistoryEntry, error) {
	ctx = wrap.WithAction(ctx, "fetch_ride_history")

	if err := simulate.Sleep(ctx, s.latency); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	entries := make([]models.RideHistoryEntry, len(rideHistory))
	copy(entries, rideHistory)
	return entries, nil
}
