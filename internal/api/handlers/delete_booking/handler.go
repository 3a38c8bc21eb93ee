package delete_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	"github.com/haeum-studio/booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgNotFound         = "booking not found"
	msgCannotDelete     = "only cancelled bookings can be deleted"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /admin/bookings/{id} - invalid booking id %q: %v", vars["bookingId"], err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - booking not found: id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotDelete):
			h.logger.Warn("DELETE /admin/bookings/{id} - booking not cancelled: id=%s", bookingID)
			handlers.RespondConflict(w, msgCannotDelete)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - failed to delete booking: id=%s error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - deleted id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": bookingID.String()})
}
