package booking

import (
	"context"
	"errors"
	"strings"
	"testing"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
)

func newTestBookingService() *BookingService {
	return NewBookingService(0, logger.InitLogger("test", logger.LevelError))
}

func testRequest() *models.BookingRequest {
	return &models.BookingRequest{
		RideType: types.RideTypeUberX,
		Pickup:   models.Location{Latitude: 37.7749, Longitude: -122.4194, Address: "San Francisco, CA"},
		Destination: models.Location{
			Latitude: 37.8044, Longitude: -122.2712, Address: "Oakland, CA",
		},
		Price:    "$13",
		Duration: "20 min",
	}
}

func TestBook_ConfirmationRecord(t *testing.T) {
	svc := newTestBookingService()

	record, err := svc.Book(context.Background(), testRequest())
	if err != nil {
		t.Fatalf("Book() unexpected error: %v", err)
	}

	if record.Status != types.BookingStatusConfirmed {
		t.Errorf("status = %q, want %q", record.Status, types.BookingStatusConfirmed)
	}
	if !strings.HasPrefix(record.BookingID, "UB") {
		t.Errorf("booking id %q must carry the UB prefix", record.BookingID)
	}
	if record.DriverName != driverName {
		t.Errorf("driver name = %q, want %q", record.DriverName, driverName)
	}
	if record.DriverRating != driverRating {
		t.Errorf("driver rating = %v, want %v", record.DriverRating, driverRating)
	}
	if record.VehicleInfo != vehicleInfo {
		t.Errorf("vehicle info = %q, want %q", record.VehicleInfo, vehicleInfo)
	}
	if record.EstimatedArrival != estimatedArrival {
		t.Errorf("estimated arrival = %q, want %q", record.EstimatedArrival, estimatedArrival)
	}
}

func TestBook_DistinctIDsUnderRapidCalls(t *testing.T) {
	svc := newTestBookingService()

	seen := make(map[string]struct{})
	for i := 0; i < 20; i++ {
		record, err := svc.Book(context.Background(), testRequest())
		if err != nil {
			t.Fatalf("Book() unexpected error on call %d: %v", i, err)
		}
		if _, dup := seen[record.BookingID]; dup {
			t.Fatalf("duplicate booking id %q on call %d", record.BookingID, i)
		}
		seen[record.BookingID] = struct{}{}
	}
}

func TestBook_MissingRideType(t *testing.T) {
	svc := newTestBookingService()

	tests := []struct {
		name string
		req  *models.BookingRequest
	}{
		{name: "nil request", req: nil},
		{name: "empty ride type", req: &models.BookingRequest{Price: "$13"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Book(context.Background(), tt.req); !errors.Is(err, types.ErrBookingFailed) {
				t.Fatalf("Book() error = %v, want %v", err, types.ErrBookingFailed)
			}
		})
	}
}

func TestBook_CancelledContext(t *testing.T) {
	svc := newTestBookingService()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Book(ctx, testRequest()); !errors.Is(err, context.Canceled) {
		t.Fatalf("Book() with cancelled context: error = %v, want context.Canceled", err)
	}
}
