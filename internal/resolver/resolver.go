// Package resolver разворачивает еженедельные повторяющиеся блоки агенды в
// конкретные интервалы на видимых датах календаря и вырезает из них время,
// уже занятое записями пациентов.
//
// Resolver не хранит состояния между вызовами и не меняет входные данные,
// поэтому его можно вызывать конкурентно из нескольких горутин.
package resolver

import (
	"time"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

// Resolver вычисляет виртуальные блоки в фиксированной таймзоне клиники
type Resolver struct {
	zone    civiltime.Zone
	logger  Logger
	metrics MetricsRecorder
}

// NewResolver создает новый экземпляр резолвера
// metrics может быть nil
func NewResolver(zone civiltime.Zone, logger Logger, metrics MetricsRecorder) *Resolver {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Resolver{
		zone:    zone,
		logger:  logger,
		metrics: metrics,
	}
}

// Zone возвращает таймзону резолвера
func (r *Resolver) Zone() civiltime.Zone {
	return r.zone
}

// ResolvePeriod разворачивает правила на каждую дату и применяет вырезание записей
// Результат сгруппирован по датам в порядке dates, каждая дата считается независимо
func (r *Resolver) ResolvePeriod(
	dates []time.Time,
	rules []domain.RecurringBlock,
	appointments []domain.Appointment,
) []domain.VirtualBlock {
	result := make([]domain.VirtualBlock, 0)
	generated := 0

	for _, date := range dates {
		blocks := r.GenerateForDate(date, rules)
		generated += len(blocks)
		result = append(result, r.ApplyOverlap(blocks, appointments, date)...)
	}

	r.metrics.RecordVirtualBlocks(generated, len(result))
	return result
}
