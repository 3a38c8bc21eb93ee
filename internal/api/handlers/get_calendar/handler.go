package get_calendar

import (
	"net/http"
	"time"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	"github.com/haeum-studio/booking-service/internal/domain"
	getCalendar "github.com/haeum-studio/booking-service/internal/usecase/get_calendar"
)

const msgInvalidMonth = "invalid month, expected YYYY-MM"

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/calendar?month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	monthStr := r.URL.Query().Get("month")

	month, err := time.ParseInLocation(domain.MonthFormat, monthStr, domain.KST)
	if err != nil {
		h.logger.Warn("GET /availability/calendar - invalid month %q: %v", monthStr, err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{Month: month})
	if err != nil {
		h.logger.Error("GET /availability/calendar - failed to build calendar: month=%s error=%v",
			monthStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/calendar - served month=%s days=%d", monthStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
