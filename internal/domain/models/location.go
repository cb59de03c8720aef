package models

// Location is an immutable pickup or destination point. Two locations are
// distinct entities even when their coordinates coincide.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}
