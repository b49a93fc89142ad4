package delete_recurring_block

import (
	"context"

	"github.com/google/uuid"
)

type RecurringBlockService interface {
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
