package update_recurring_block

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

type RecurringBlockService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateRecurringBlockRequest) (*models.RecurringBlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
