package models

// RideOption is a static, read-only catalog entry.
type RideOption struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Price       string `json:"price"`
	Wait        string `json:"wait"`
	Description string `json:"description"`
	Capacity    string `json:"capacity"`
}

// PriceEstimate is derived per (pickup, destination, ride type) triple and is
// only meaningful paired with the inputs it was computed for. Not cached
// beyond the current session.
type PriceEstimate struct {
	RideType string `json:"ride_type"`
	Price    string `json:"price"`
	Distance string `json:"distance"`
	Duration string `json:"duration"`
}

// BookingRequest carries the finalized ride selection to the booking service.
type BookingRequest struct {
	RideType    string   `json:"ride_type"`
	Pickup      Location `json:"pickup"`
	Destination Location `json:"destination"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
}

// BookingRecord is created exactly once per successful booking call and never
// mutated afterwards.
type BookingRecord struct {
	BookingID        string  `json:"booking_id"`
	Status           string  `json:"status"`
	DriverName       string  `json:"driver_name"`
	DriverRating     float64 `json:"driver_rating"`
	VehicleInfo      string  `json:"vehicle_info"`
	EstimatedArrival string  `json:"estimated_arrival"`
}

// RideHistoryEntry is a static, read-only past ride.
type RideHistoryEntry struct {
	ID     int    `json:"id"`
	Date   string `json:"date"`
	From   string `json:"from"`
	To     string `json:"to"`
	Type   string `json:"type"`
	Price  string `json:"price"`
	Status string `json:"status"`
}
