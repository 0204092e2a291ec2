package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Elzoidbergo/HostPilot/internal/client/lodgify"
	"github.com/Elzoidbergo/HostPilot/internal/xerrors"
	"github.com/Elzoidbergo/HostPilot/internal/xhttp"
	"github.com/Elzoidbergo/HostPilot/internal/xslog"
)

type Booking struct {
	bookings lodgify.BookingService
}

func NewBooking(bookings lodgify.BookingService) *Booking {
	return &Booking{bookings: bookings}
}

// HandleGetBooking handles GET /api/bookings/{id}.
func (h *Booking) HandleGetBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := xslog.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		xerrors.WriteError(ctx, w, xerrors.BadRequest(xerrors.WithMessage("booking id must be a positive integer")))
		return
	}

	booking, err := h.bookings.Get(ctx, id)
	if err != nil {
		var apiErr *lodgify.APIError
		if errors.As(err, &apiErr) {
			if apiErr.StatusCode == http.StatusNotFound {
				xerrors.WriteError(ctx, w, xerrors.NotFound(xerrors.WithMessage("booking not found"), xerrors.WithCause(err)))
				return
			}
			logger.ErrorContext(ctx, "lodgify rejected booking lookup",
				xslog.Error(err),
				xslog.BookingID(id),
				xslog.HTTPStatus(apiErr.StatusCode))
			// The upstream status and message travel back to the caller.
			xerrors.WriteError(ctx, w, xerrors.Internal(
				xerrors.WithMessage(fmt.Sprintf("upstream booking lookup failed: %d %s", apiErr.StatusCode, apiErr.Message)),
				xerrors.WithCause(err),
			))
			return
		}

		logger.ErrorContext(ctx, "failed to fetch booking",
			xslog.Error(err),
			xslog.BookingID(id))
		xerrors.WriteError(ctx, w, xerrors.Internal(xerrors.WithMessage("failed to fetch booking"), xerrors.WithCause(err)))
		return
	}

	xhttp.WriteOK(w, booking)
}
