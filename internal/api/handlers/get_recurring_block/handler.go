package get_recurring_block

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

// Handle GET /api/v1/recurring-blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	blockID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("GET /recurring-blocks/{id} - Invalid block ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	result, err := h.service.Get(r.Context(), userID, blockID)
	if err != nil {
		if errors.Is(err, recurringBlocks.ErrRecurringBlockNotFound) {
			h.logger.Warn("GET /recurring-blocks/{id} - Block not found: user_id=%s, block_id=%s", userID, blockID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /recurring-blocks/{id} - Failed to get block: block_id=%s, error=%v", blockID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
