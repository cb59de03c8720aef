package handler

import (
	"context"
	"net/http"

	"uberclone/internal/adapter/http/handler/dto"
	"uberclone/internal/domain/models"
	"uberclone/internal/domain/types"
	"uberclone/internal/service/trip"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
	"uberclone/pkg/uuid"
	"uberclone/pkg/validator"
)

type TripService interface {
	Begin(ctx context.Context, profile *models.UserProfile) *trip.Snapshot
	CurrentLocation(ctx context.Context, userID uuid.UUID) (*models.Location, error)
	SelectDestination(ctx context.Context, userID uuid.UUID, destination models.Location) (*trip.Snapshot, error)
	LoadOptions(ctx context.Context, userID uuid.UUID) ([]trip.OptionQuote, error)
	SelectRide(ctx context.Context, userID uuid.UUID, rideType string) (*trip.OptionQuote, error)
	Book(ctx context.Context, userID uuid.UUID) (*models.BookingRecord, error)
	Snapshot(ctx context.Context, userID uuid.UUID) (*trip.Snapshot, error)
	End(ctx context.Context, userID uuid.UUID)
}

type Trip struct {
	trips TripService
	l     logger.Logger
}

func NewTrip(trips TripService, l logger.Logger) *Trip {
	return &Trip{
		trips: trips,
		l:     l,
	}
}

// CurrentLocation godoc
// @Summary      Fetch the current location
// @Description  Resolves the simulated device location and records it as the trip's pickup point.
// @Tags         Trip
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /location/current [get]
func (h *Trip) CurrentLocation(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "current_location")

	user := models.UserFromContext(ctx)

	loc, err := h.trips.CurrentLocation(ctx, user.ID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch current location", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"location": loc}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Destination godoc
// @Summary      Select the destination
// @Description  Records a map tap, or reuses the pickup point when use_current_location is set.
// @Tags         Trip
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.DestinationRequest true "Destination"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /trip/destination [post]
func (h *Trip) Destination(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "select_destination")

	user := models.UserFromContext(ctx)

	req := &dto.DestinationRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateDestination(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	destination := req.ToModel()
	if req.UseCurrentLocation {
		snap, err := h.trips.Snapshot(ctx, user.ID)
		if err != nil {
			errorResponse(w, GetCode(err), err.Error())
			return
		}
		if snap.Pickup == nil {
			errorResponse(w, GetCode(types.ErrInvalidTransition), types.ErrInvalidTransition.Error())
			return
		}
		destination = *snap.Pickup
	}

	snap, err := h.trips.SelectDestination(ctx, user.ID, destination)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to select destination", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"trip": snap}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Options godoc
// @Summary      Load ride options with price estimates
// @Description  Fetches the catalog and prices every entry for the selected route. Failed estimates are replaced per option by the fallback estimate.
// @Tags         Trip
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /trip/options [get]
func (h *Trip) Options(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "load_options")

	user := models.UserFromContext(ctx)

	quotes, err := h.trips.LoadOptions(ctx, user.ID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to load ride options", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"options": quotes}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Select godoc
// @Summary      Select a ride option
// @Tags         Trip
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.SelectRideRequest true "Ride type"
// @Success      200  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /trip/select [post]
func (h *Trip) Select(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "select_ride")

	user := models.UserFromContext(ctx)

	req := &dto.SelectRideRequest{}
	if err := readJSON(w, r, req); err != nil {
		badRequestResponse(w, err.Error())
		return
	}

	v := validator.New()
	dto.ValidateSelectRide(v, req)
	if !v.Valid() {
		failedValidationResponse(w, v.Errors)
		return
	}

	quote, err := h.trips.SelectRide(ctx, user.ID, req.RideType)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to select ride", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"selected": quote}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Book godoc
// @Summary      Book the selected ride
// @Description  On success the trip reaches its terminal state. On failure the selection is kept and the call may be retried.
// @Tags         Trip
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  map[string]any
// @Failure      409  {object}  map[string]any
// @Router       /trip/book [post]
func (h *Trip) Book(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "book_ride")

	user := models.UserFromContext(ctx)

	record, err := h.trips.Book(ctx, user.ID)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to book ride", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	ctx = wrap.WithBookingID(ctx, record.BookingID)
	h.l.Info(ctx, "booking confirmed")

	response := envelope{"booking": record}
	if err := writeJSON(w, http.StatusCreated, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}

// Get godoc
// @Summary      Current trip state
// @Tags         Trip
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /trip [get]
func (h *Trip) Get(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "get_trip")

	user := models.UserFromContext(ctx)

	snap, err := h.trips.Snapshot(ctx, user.ID)
	if err != nil {
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"trip": snap}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
