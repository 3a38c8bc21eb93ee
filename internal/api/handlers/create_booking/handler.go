package create_booking

import (
	"errors"
	"net/http"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	createBooking "github.com/haeum-studio/booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time, expected YYYY-MM-DD and HH:MM"
	msgDateInPast         = "the requested date is in the past"
	msgDateBlocked        = "the requested date is not open for booking"
	msgDateTooFar         = "the requested date is beyond the booking horizon"
	msgOutsideNotice      = "the slot starts inside the minimum advance notice window"
	msgSlotTaken          = "the requested slot is already taken"
	msgTimeNotOffered     = "the requested time is not an offered slot"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - slot taken: date=%s time=%s", req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateBlocked):
			h.logger.Warn("POST /bookings - date blocked: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateBlocked)

		case errors.Is(err, createBooking.ErrDateTooFar):
			h.logger.Warn("POST /bookings - date too far: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrOutsideNotice):
			h.logger.Warn("POST /bookings - outside notice window: date=%s time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgOutsideNotice)

		case errors.Is(err, createBooking.ErrTimeNotOffered):
			h.logger.Warn("POST /bookings - time not offered: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgTimeNotOffered)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - failed to create booking: date=%s time=%s error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%s date=%s time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
