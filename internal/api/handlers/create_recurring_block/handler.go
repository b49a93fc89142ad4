package create_recurring_block

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	recurringBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/recurring-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	var req CreateRecurringBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /recurring-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		if errors.Is(err, recurringBlocks.ErrInvalidInput) {
			h.logger.Warn("POST /recurring-blocks - Invalid data: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /recurring-blocks - Failed to create block: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /recurring-blocks - Block created: user_id=%s, block_id=%s", userID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
