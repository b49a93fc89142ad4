package get_calendar_blocks

import (
	"time"

	"github.com/google/uuid"

	getCalendarBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/usecase/get_calendar_blocks"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

// CalendarBlocksResponse HTTP response model
type CalendarBlocksResponse struct {
	From   string                 `json:"from"`
	To     string                 `json:"to"`
	Blocks []VirtualBlockResponse `json:"blocks"`
}

// VirtualBlockResponse виртуальный блок в формате событий календаря
type VirtualBlockResponse struct {
	ID          string    `json:"id"`
	RecurringID uuid.UUID `json:"recurringId"`
	Title       string    `json:"title"`
	Start       string    `json:"start"` // RFC3339 со смещением таймзоны клиники
	End         string    `json:"end"`
	IsRecurring bool      `json:"isRecurring"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendarBlocks.Response, zone civiltime.Zone) *CalendarBlocksResponse {
	blocks := make([]VirtualBlockResponse, len(resp.Blocks))
	for i, b := range resp.Blocks {
		blocks[i] = VirtualBlockResponse{
			ID:          b.ID,
			RecurringID: b.RecurringID,
			Title:       b.Title,
			Start:       b.Start.In(zone.Location()).Format(time.RFC3339),
			End:         b.End.In(zone.Location()).Format(time.RFC3339),
			IsRecurring: true,
		}
	}

	return &CalendarBlocksResponse{
		From:   zone.DateKey(resp.From),
		To:     zone.DateKey(resp.To),
		Blocks: blocks,
	}
}
