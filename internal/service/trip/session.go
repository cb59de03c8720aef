package trip

import (
	"sync"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/uuid"
)

// OptionQuote pairs a catalog entry with the estimate computed for the
// session's pickup and destination. Fallback marks an estimate substituted
// after a failed live call.
type OptionQuote struct {
	Option   models.RideOption     `json:"option"`
	Estimate *models.PriceEstimate `json:"estimate"`
	Fallback bool                  `json:"fallback"`
}

// session is the explicit state threaded through the workflow transitions.
// All access goes through its mutex; one session serves one user.
type session struct {
	mu sync.Mutex

	userID      uuid.UUID
	state       types.TripState
	profile     *models.UserProfile
	pickup      *models.Location
	destination *models.Location
	quotes      []OptionQuote
	selected    *OptionQuote
	booking     *models.BookingRecord
}

// Snapshot is a read-only copy of a session for callers.
type Snapshot struct {
	State       types.TripState       `json:"state"`
	Profile     *models.UserProfile   `json:"profile,omitempty"`
	Pickup      *models.Location      `json:"pickup,omitempty"`
	Destination *models.Location      `json:"destination,omitempty"`
	Options     []OptionQuote         `json:"options,omitempty"`
	Selected    *OptionQuote          `json:"selected,omitempty"`
	Booking     *models.BookingRecord `json:"booking,omitempty"`
}

// snapshot must be called with the session lock held.
func (s *session) snapshot() *Snapshot {
	snap := &Snapshot{
		State:   s.state,
		Profile: s.profile,
	}

	if s.pickup != nil {
		pickup := *s.pickup
		snap.Pickup = &pickup
	}
	if s.destination != nil {
		destination := *s.destination
		snap.Destination = &destination
	}
	if len(s.quotes) > 0 {
		snap.Options = make([]OptionQuote, len(s.quotes))
		copy(snap.Options, s.quotes)
	}
	if s.selected != nil {
		selected := *s.selected
		snap.Selected = &selected
	}
	if s.booking != nil {
		booking := *s.booking
		snap.Booking = &booking
	}

	return snap
}

// inState must be called with the session lock held.
func (s *session) inState(allowed ...types.TripState) bool {
	for _, state := range allowed {
		if s.state == state {
			return true
		}
	}
	return false
}
