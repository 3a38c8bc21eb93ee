package update_rules

import (
	"errors"
	"net/http"

	"github.com/haeum-studio/booking-service/internal/api/handlers"
	"github.com/haeum-studio/booking-service/internal/service/rules"
	"github.com/haeum-studio/booking-service/internal/service/rules/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRules       = "invalid availability rules"
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

// Handle PUT /api/v1/admin/availability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateRulesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability-rules - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	saved, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rules.ErrInvalidRules):
			h.logger.Warn("PUT /admin/availability-rules - invalid rules: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/availability-rules - failed to save rules: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability-rules - saved, %d available times", len(saved.AvailableTimes))
	handlers.RespondJSON(w, http.StatusOK, saved)
}
