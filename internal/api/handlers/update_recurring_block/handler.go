package update_recurring_block

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
	msgInvalidBlockID     = "некорректный ID блока"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "блок не найден"
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

// Handle PUT /api/v1/recurring-blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PUT /recurring-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	var req UpdateRecurringBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /recurring-blocks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), blockID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, recurringBlocks.ErrRecurringBlockNotFound):
			h.logger.Warn("PUT /recurring-blocks/{id} - Block not found: user_id=%s, block_id=%s", userID, blockID)
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, recurringBlocks.ErrInvalidInput):
			h.logger.Warn("PUT /recurring-blocks/{id} - Invalid data: block_id=%s, error=%v", blockID, err)
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /recurring-blocks/{id} - Failed to update block: block_id=%s, error=%v", blockID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /recurring-blocks/{id} - Block updated: user_id=%s, block_id=%s", userID, blockID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
