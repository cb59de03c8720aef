// Package trip is the screen-level workflow state machine:
//
//	Unauthenticated -> Authenticated -> LocationKnown -> DestinationSelected
//	  -> OptionsLoaded -> RideSelected -> Booked
//
// Each transition is driven by one simulated backend call; out-of-order
// operations are rejected with types.ErrInvalidTransition.
package trip

import (
	"context"
	"fmt"
	"sync"

	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/metrics"
	"uberclone/pkg/uuid"
)

const serviceName = "uberclone"

type (
	LocationProvider interface {
		Current(ctx context.Context) (*models.Location, error)
	}

	Catalog interface {
		Options(ctx context.Context) ([]models.RideOption, error)
	}

	Estimator interface {
		Estimate(ctx context.Context, pickup, destination models.Location, rideType string) (*models.PriceEstimate, error)
		Fallback(option models.RideOption) *models.PriceEstimate
	}

	Booker interface {
		Book(ctx context.Context, req *models.BookingRequest) (*models.BookingRecord, error)
	}
)

type TripService struct {
	locations LocationProvider
	catalog   Catalog
	estimator Estimator
	booker    Booker
	store     *SessionStore
	log       logger.Logger
}

func NewTripService(locations LocationProvider, catalog Catalog, estimator Estimator, booker Booker, log logger.Logger) *TripService {
	return &TripService{
		locations: locations,
		catalog:   catalog,
		estimator: estimator,
		booker:    booker,
		store:     NewSessionStore(),
		log:       log,
	}
}

// Begin starts a fresh session for an authenticated user. A prior session for
// the same user is discarded: login always restarts the workflow.
func (s *TripService) Begin(ctx context.Context, profile *models.UserProfile) *Snapshot {
	ctx = wrap.WithAction(ctx, "trip_begin")

	sess := &session{
		userID:  profile.ID,
		state:   types.StateAuthenticated,
		profile: profile,
	}
	s.store.Put(sess)
	metrics.ActiveSessionsGauge.WithLabelValues(serviceName).Set(float64(s.store.Len()))

	s.log.Info(ctx, "trip session started", "user_id", profile.ID.String())

	return sess.snapshot()
}

// CurrentLocation fetches the simulated device location and records it as the
// session's pickup point.
func (s *TripService) CurrentLocation(ctx context.Context, userID uuid.UUID) (*models.Location, error) {
	ctx = wrap.WithAction(ctx, "trip_current_location")

	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.inState(types.StateAuthenticated, types.StateLocationKnown) {
		return nil, wrap.Error(ctx, types.ErrInvalidTransition)
	}

	loc, err := s.locations.Current(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	sess.pickup = loc
	sess.state = types.StateLocationKnown

	return loc, nil
}

// SelectDestination records the user's destination pick. Re-picking before
// booking is allowed and discards any loaded options and selection.
func (s *TripService) SelectDestination(ctx context.Context, userID uuid.UUID, destination models.Location) (*Snapshot, error) {
	ctx = wrap.WithAction(ctx, "trip_select_destination")

	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.inState(types.StateLocationKnown, types.StateDestinationSelected, types.StateOptionsLoaded, types.StateRideSelected) {
		return nil, wrap.Error(ctx, types.ErrInvalidTransition)
	}

	sess.destination = &destination
	sess.quotes = nil
	sess.selected = nil
	sess.state = types.StateDestinationSelected

	return sess.snapshot(), nil
}

// LoadOptions fetches the catalog and prices every entry for the session's
// pickup and destination. The per-option estimates run concurrently and
// independently; a failed one is replaced by that option's fallback estimate
// without aborting the rest. The options are presented only once all of them
// have resolved.
func (s *TripService) LoadOptions(ctx context.Context, userID uuid.UUID) ([]OptionQuote, error) {
	ctx = wrap.WithAction(ctx, "trip_load_options")

	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.inState(types.StateDestinationSelected, types.StateOptionsLoaded) {
		return nil, wrap.Error(ctx, types.ErrInvalidTransition)
	}

	options, err := s.catalog.Options(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", types.ErrCatalogUnavailable, err))
	}

	quotes := s.priceOptions(ctx, *sess.pickup, *sess.destination, options)

	// A cancelled context means the caller went away mid-fetch: discard the
	// results instead of mutating the session.
	if ctx.Err() != nil {
		return nil, wrap.Error(ctx, ctx.Err())
	}

	sess.quotes = quotes
	sess.selected = nil
	sess.state = types.StateOptionsLoaded

	result := make([]OptionQuote, len(quotes))
	copy(result, quotes)
	return result, nil
}

// priceOptions fans out one estimate call per option and fans the results
// back in, substituting the fallback estimate for individual failures.
func (s *TripService) priceOptions(ctx context.Context, pickup, destination models.Location, options []models.RideOption) []OptionQuote {
	quotes := make([]OptionQuote, len(options))

	var wg sync.WaitGroup
	for i, opt := range options {
		wg.Add(1)
		go func(i int, opt models.RideOption) {
			defer wg.Done()

			estimate, err := s.estimator.Estimate(ctx, pickup, destination, opt.Type)
			if err != nil {
				if ctx.Err() != nil {
					// The whole batch is being abandoned; no fallback.
					return
				}
				s.log.Warn(ctx, "price estimation failed, substituting fallback",
					"ride_type", opt.Type,
					"err", err.Error(),
				)
				metrics.RecordPriceEstimate(serviceName, opt.Type, true)
				quotes[i] = OptionQuote{Option: opt, Estimate: s.estimator.Fallback(opt), Fallback: true}
				return
			}

			metrics.RecordPriceEstimate(serviceName, opt.Type, false)
			quotes[i] = OptionQuote{Option: opt, Estimate: estimate}
		}(i, opt)
	}
	wg.Wait()

	return quotes
}

// SelectRide picks one of the loaded options. Re-selecting replaces the prior
// selection.
func (s *TripService) SelectRide(ctx context.Context, userID uuid.UUID, rideType string) (*OptionQuote, error) {
	ctx = wrap.WithAction(ctx, "trip_select_ride")

	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.inState(types.StateOptionsLoaded, types.StateRideSelected) {
		return nil, wrap.Error(ctx, types.ErrInvalidTransition)
	}

	for i := range sess.quotes {
		if sess.quotes[i].Option.Type == rideType {
			quote := sess.quotes[i]
			sess.selected = &quote
			sess.state = types.StateRideSelected

			selected := quote
			return &selected, nil
		}
	}

	return nil, wrap.Error(ctx, types.ErrRideTypeUnknown)
}

// Book submits the selected ride. On success the session reaches its terminal
// Booked state; on failure it stays in RideSelected so the user can retry.
func (s *TripService) Book(ctx context.Context, userID uuid.UUID) (*models.BookingRecord, error) {
	ctx = wrap.WithAction(ctx, "trip_book")

	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if !sess.inState(types.StateRideSelected) {
		return nil, wrap.Error(ctx, types.ErrInvalidTransition)
	}

	req := &models.BookingRequest{
		RideType:    sess.selected.Option.Type,
		Pickup:      *sess.pickup,
		Destination: *sess.destination,
		Price:       sess.selected.Estimate.Price,
		Duration:    sess.selected.Estimate.Duration,
	}

	record, err := s.booker.Book(ctx, req)
	metrics.RecordBooking(serviceName, err)
	if err != nil {
		// State is untouched: the user stays on the selection and may retry.
		return nil, wrap.Error(ctx, err)
	}

	sess.booking = record
	sess.state = types.StateBooked

	booking := *record
	return &booking, nil
}

// Snapshot returns a copy of the session's current state.
func (s *TripService) Snapshot(ctx context.Context, userID uuid.UUID) (*Snapshot, error) {
	sess, ok := s.store.Get(userID)
	if !ok {
		return nil, wrap.Error(ctx, types.ErrSessionNotFound)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	return sess.snapshot(), nil
}

// End discards the user's session, if any.
func (s *TripService) End(ctx context.Context, userID uuid.UUID) {
	if s.store.Delete(userID) {
		metrics.ActiveSessionsGauge.WithLabelValues(serviceName).Set(float64(s.store.Len()))
		s.log.Info(wrap.WithAction(ctx, "trip_end"), "trip session ended", "user_id", userID.String())
	}
}
