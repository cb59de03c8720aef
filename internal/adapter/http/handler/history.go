package handler

import (
	"context"
	"net/http"

	"uberclone/internal/domain/models"
	"uberclone/pkg/logger"
	wrap "uberclone/pkg/logger/wrapper"
)

type HistoryService interface {
	Rides(ctx context.Context) ([]models.RideHistoryEntry, error)
}

type History struct {
	history HistoryService
	l       logger.Logger
}

func NewHistory(history HistoryService, l logger.Logger) *History {
	return &History{
		history: history,
		l:       l,
	}
}

// List godoc
// @Summary      Ride history
// @Description  Returns the user's past rides, newest first.
// @Tags         Rides
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]any
// @Router       /rides/history [get]
func (h *History) List(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "ride_history")

	rides, err := h.history.Rides(ctx)
	if err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to fetch ride history", err)
		errorResponse(w, GetCode(err), err.Error())
		return
	}

	response := envelope{"rides": rides}
	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		h.l.Error(wrap.ErrorCtx(ctx, err), "failed to write JSON response", err)
		internalErrorResponse(w, "failed to write JSON response")
	}
}
