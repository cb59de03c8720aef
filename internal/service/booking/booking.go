// Package booking turns a finalized ride selection into a confirmation
// record.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/simulate"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/uuid"
)

// Placeholder dispatch data; there is no real driver pool.
const (
	driverName       = "John Doe"
	driverRating     = 4.8
	vehicleInfo      = "Toyota Camry - ABC 123"
	estimatedArrival = "3 min"
)

type BookingService struct {
	latency time.Duration
	log     logger.Logger
}

func NewBookingService(latency time.Duration, log logger.Logger) *BookingService {
	return &BookingService{
		latency: latency,
		log:     log,
	}
}

// Book produces a confirmation record for the request. Fails with
// types.ErrBookingFailed when no ride type is selected. The booking id is
// unique per call even under rapid repeated calls.
func (s *BookingService) Book(ctx context.Context, req *models.BookingRequest) (*models.BookingRecord, error) {
	ctx = wrap.WithAction(ctx, "book_ride")

	if req == nil || req.RideType == "" {
		return nil, wrap.Error(ctx, types.ErrBookingFailed)
	}

	if err := simulate.Sleep(ctx, s.latency); err != nil {
		return nil, wrap.Error(ctx, err)
	}

	id, err := s.generateBookingID()
	if err != nil {
		s.log.Error(ctx, "failed to generate booking id", err)
		return nil, wrap.Error(ctx, types.ErrBookingFailed)
	}

	record := &models.BookingRecord{
		BookingID:        id,
		Status:           types.BookingStatusConfirmed,
		DriverName:       driverName,
		DriverRating:     driverRating,
		VehicleInfo:      vehicleInfo,
		EstimatedArrival: estimatedArrival,
	}

	s.log.Info(wrap.WithBookingID(ctx, id), "ride booked",
		"ride_type", req.RideType,
		"price", req.Price,
	)

	return record, nil
}

// generateBookingID derives the id from wall-clock millis plus a random
// suffix, so two bookings in the same millisecond still get distinct ids.
func (s *BookingService) generateBookingID() (string, error) {
	suffix, err := uuid.New()
	if err != nil {
		return "", err
	}

	short := strings.SplitN(suffix.String(), "-", 2)[0]
	return fmt.Sprintf("UB%d-%s", time.Now().UnixMilli(), short), nil
}
