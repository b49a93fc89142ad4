package get_calendar_blocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

// RecurringBlockRepository интерфейс репозитория повторяющихся блоков
type RecurringBlockRepository interface {
	// GetByUserID получает блоки пользователя, onlyActive исключает выключенные
	GetByUserID(ctx context.Context, userID uuid.UUID, onlyActive bool) ([]*domain.RecurringBlock, error)
}

// AppointmentRepository интерфейс репозитория записей пациентов
type AppointmentRepository interface {
	// GetByUserAndPeriod получает записи пользователя, начинающиеся в [from, to)
	GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.Appointment, error)
}

// Resolver интерфейс вычисления виртуальных блоков
type Resolver interface {
	Zone() civiltime.Zone
	ResolvePeriod(dates []time.Time, rules []domain.RecurringBlock, appointments []domain.Appointment) []domain.VirtualBlock
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
