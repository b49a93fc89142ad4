package recurring_blocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
)

// RecurringBlockRepository интерфейс репозитория повторяющихся блоков
type RecurringBlockRepository interface {
	Create(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.RecurringBlock, error)
	GetByUserID(ctx context.Context, userID uuid.UUID, onlyActive bool) ([]*domain.RecurringBlock, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch domain.RecurringBlockPatch) (*domain.RecurringBlock, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
