package get_calendar_blocks

import (
	"context"

	getCalendarBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/usecase/get_calendar_blocks"
)

type GetCalendarBlocksUseCase interface {
	Execute(ctx context.Context, req *getCalendarBlocks.Request) (*getCalendarBlocks.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
