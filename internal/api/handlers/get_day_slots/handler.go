package get_day_slots

import (
	"net/http"
	"time"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	"github.com/haeum-studio/booking-service/internal/domain"
	getDaySlots "github.com/haeum-studio/booking-service/internal/usecase/get_day_slots"
)

const msgInvalidDate = "invalid date, expected YYYY-MM-DD"

type Handler struct {
	useCase GetDaySlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetDaySlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")

	date, err := time.ParseInLocation(domain.DateFormat, dateStr, domain.KST)
	if err != nil {
		h.logger.Warn("GET /availability/slots - invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /availability/slots - failed to build day view: date=%s error=%v",
			dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability/slots - served date=%s slots=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
