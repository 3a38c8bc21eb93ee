package get_rules

import (
	"net/http"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
)

type Handler struct {
	service RulesService
	logger  Logger
}

func NewHandler(service RulesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rules, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/availability-rules - failed to get rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/availability-rules - served")
	handlers.RespondJSON(w, http.StatusOK, rules)
}
