package get_calendar_blocks

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	getCalendarBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/usecase/get_calendar_blocks"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

const (
	msgMissingDates  = "параметры from и to обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange  = "дата from не может быть позже to"
	msgRangeTooLong  = "слишком длинный период"
	msgInvalidParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCalendarBlocksUseCase
	zone    civiltime.Zone
	logger  Logger
}

func NewHandler(useCase GetCalendarBlocksUseCase, zone civiltime.Zone, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		zone:    zone,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/recurring-blocks
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD), обе даты включительно
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w)
		return
	}

	// Извлекаем период из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /calendar/recurring-blocks - Missing dates: from=%q, to=%q", fromStr, toStr)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	from, err := h.zone.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /calendar/recurring-blocks - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	to, err := h.zone.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /calendar/recurring-blocks - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), &getCalendarBlocks.Request{
		UserID: userID,
		From:   from,
		To:     to,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendarBlocks.ErrInvalidRange):
			handlers.RespondBadRequest(w, msgInvalidRange)
		case errors.Is(err, getCalendarBlocks.ErrRangeTooLong):
			handlers.RespondBadRequest(w, msgRangeTooLong)
		case errors.Is(err, getCalendarBlocks.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)
		default:
			h.logger.Error("GET /calendar/recurring-blocks - Failed to resolve blocks: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/recurring-blocks - Blocks resolved: user_id=%s, from=%s, to=%s, blocks_count=%d",
		userID, fromStr, toStr, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.zone))
}
