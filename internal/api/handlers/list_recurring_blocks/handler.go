package list_recurring_blocks

import (
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
)

type Handler struct {
	service RecurringBlockService
	logger  Logger
}

func NewHandler(service RecurringBlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/recurring-blocks
// Возвращает все блоки пользователя, включая выключенные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /recurring-blocks - Failed to list blocks: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /recurring-blocks - Blocks retrieved: user_id=%s, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
