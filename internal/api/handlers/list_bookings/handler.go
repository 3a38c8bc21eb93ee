package list_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	"github.com/haeum-studio/booking-service/internal/domain"
	"github.com/haeum-studio/booking-service/internal/service/bookings"
	"github.com/haeum-studio/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "invalid date filter, expected YYYY-MM-DD"
	msgInvalidFilter = "invalid booking filter"
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

// Handle GET /api/v1/admin/bookings?startDate=&endDate=&status=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.ListBookingsRequest{}

	if s := query.Get("startDate"); s != "" {
		date, err := time.ParseInLocation(domain.DateFormat, s, domain.KST)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - invalid startDate %q: %v", s, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &date
	}

	if s := query.Get("endDate"); s != "" {
		date, err := time.ParseInLocation(domain.DateFormat, s, domain.KST)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - invalid endDate %q: %v", s, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &date
	}

	if s := query.Get("status"); s != "" {
		req.Status = &s
	}

	if s := query.Get("includeCancelled"); s != "" {
		include, err := strconv.ParseBool(s)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - invalid includeCancelled %q: %v", s, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.IncludeCancelled = include
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - served %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
