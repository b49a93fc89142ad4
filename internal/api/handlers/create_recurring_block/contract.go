package create_recurring_block

import (
	"context"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

type RecurringBlockService interface {
	Create(ctx context.Context, req *models.CreateRecurringBlockRequest) (*models.RecurringBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
