package resolver

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
)

// GenerateForDate возвращает виртуальные блоки правил, действующих в указанную дату,
// без учета записей. Порядок блоков совпадает с порядком правил.
//
// Неактивные правила и правила другого дня недели пропускаются.
// Правила с некорректным временем (не HH:MM[:SS] или начало не раньше конца)
// пропускаются с предупреждением в логе, остальные правила обрабатываются как обычно.
func (r *Resolver) GenerateForDate(date time.Time, rules []domain.RecurringBlock) []domain.VirtualBlock {
	day := r.zone.DateOf(date)
	weekday := r.zone.Weekday(day)
	dateKey := r.zone.DateKey(day)

	blocks := make([]domain.VirtualBlock, 0)

	for i := range rules {
		rule := &rules[i]
		if !rule.AppliesOn(weekday) {
			continue
		}

		start, end, err := ruleInterval(rule)
		if err != nil {
			r.logger.Warn("GenerateForDate: skipping recurring block id=%s on %s: %v", rule.ID, dateKey, err)
			r.metrics.RecordSkippedRule(skipReason(err))
			continue
		}

		blocks = append(blocks, domain.VirtualBlock{
			ID:          fmt.Sprintf("%s_%s", rule.ID, dateKey),
			RecurringID: rule.ID,
			Title:       rule.Title,
			Start:       r.zone.At(day, start),
			End:         r.zone.At(day, end),
		})
	}

	return blocks
}

// ruleInterval возвращает границы правила в минутах с полуночи
func ruleInterval(rule *domain.RecurringBlock) (int, int, error) {
	start, end, err := rule.Interval()
	if err != nil {
		return 0, 0, err
	}
	if start >= end {
		return 0, 0, fmt.Errorf("%w: %s-%s", ErrEmptyInterval, rule.StartTime, rule.EndTime)
	}
	return start, end, nil
}

func skipReason(err error) string {
	if errors.Is(err, ErrInvalidTimeFormat) {
		return skipReasonTimeFormat
	}
	return skipReasonInterval
}
