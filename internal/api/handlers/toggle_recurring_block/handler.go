package toggle_recurring_block

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	recurringBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks"
)

const (
	msgInvalidBlockID = "некорректный ID блока"
	msgNotFound       = "блок не найден"
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

// Handle PATCH /api/v1/recurring-blocks/{id}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /recurring-blocks/{id}/toggle - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	result, err := h.service.ToggleActive(r.Context(), userID, blockID)
	if err != nil {
		switch {
		case errors.Is(err, recurringBlocks.ErrRecurringBlockNotFound):
			h.logger.Warn("PATCH /recurring-blocks/{id}/toggle - Block not found: user_id=%s, block_id=%s", userID, blockID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, recurringBlocks.ErrInvalidInput):
			h.logger.Warn("PATCH /recurring-blocks/{id}/toggle - Cannot toggle: block_id=%s, error=%v", blockID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PATCH /recurring-blocks/{id}/toggle - Failed to toggle block: block_id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /recurring-blocks/{id}/toggle - Block toggled: block_id=%s, active=%t", blockID, result.Active)
	handlers.RespondJSON(w, http.StatusOK, result)
}
