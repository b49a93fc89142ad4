package resolver

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
)

// interval отрезок времени в минутах от полуночи гражданской даты
type interval struct {
	start int
	end   int
}

// ApplyOverlap вырезает из виртуальных блоков даты время, занятое записями.
//
// Учитываются только записи, начинающиеся в эту дату (в таймзоне клиники),
// не личные и не отмененные. Блок, который запись закрывает полностью, исчезает;
// запись внутри блока разбивает его на части с суффиксом _partN.
//
// Пересечение считается по строгим неравенствам:
// - Блок 12:00-13:00, запись 11:30-12:00 → НЕТ пересечения (граничат)
// - Блок 12:00-13:00, запись 13:00-13:30 → НЕТ пересечения (граничат)
// - Блок 12:00-13:00, запись 12:20-12:40 → части 12:00-12:20 и 12:40-13:00
func (r *Resolver) ApplyOverlap(
	blocks []domain.VirtualBlock,
	appointments []domain.Appointment,
	date time.Time,
) []domain.VirtualBlock {
	day := r.zone.DateOf(date)
	busy := r.dayAppointments(appointments, day)

	if len(busy) == 0 {
		return blocks
	}

	result := make([]domain.VirtualBlock, 0, len(blocks))
	for _, block := range blocks {
		result = append(result, r.cutBlock(block, busy, day)...)
	}
	return result
}

// dayAppointments отбирает записи даты, занимающие агенду, и переводит их в минуты
func (r *Resolver) dayAppointments(appointments []domain.Appointment, day time.Time) []interval {
	busy := make([]interval, 0)

	for i := range appointments {
		apt := &appointments[i]
		if !apt.BlocksAgenda() || !r.zone.SameDate(apt.Start, day) {
			continue
		}

		start := r.zone.MinuteOfDay(apt.Start)
		// Запись, заканчивающаяся после полуночи, занимает день до конца (минута 1440),
		// конец не переводится в минуты следующего дня
		end := r.zone.MinutesSince(day, apt.End)

		// Записи нулевой или отрицательной длительности ничего не занимают
		if end <= start {
			continue
		}

		busy = append(busy, interval{start: start, end: end})
	}

	return busy
}

// cutBlock возвращает оставшиеся после вырезания части блока в хронологическом порядке
func (r *Resolver) cutBlock(block domain.VirtualBlock, busy []interval, day time.Time) []domain.VirtualBlock {
	blockStart := r.zone.MinutesSince(day, block.Start)
	blockEnd := r.zone.MinutesSince(day, block.End)

	// Шаг 1: собираем пересекающиеся интервалы, обрезанные по границам блока
	cuts := make([]interval, 0)
	for _, apt := range busy {
		if apt.start < blockEnd && apt.end > blockStart {
			cuts = append(cuts, interval{
				start: max(apt.start, blockStart),
				end:   min(apt.end, blockEnd),
			})
		}
	}

	if len(cuts) == 0 {
		return []domain.VirtualBlock{block}
	}

	// Шаг 2: сортируем и склеиваем касающиеся и пересекающиеся вырезы
	merged := mergeIntervals(cuts)

	// Шаг 3: собираем промежутки между вырезами
	parts := make([]domain.VirtualBlock, 0, len(merged)+1)
	cursor := blockStart

	emit := func(from, to int) {
		parts = append(parts, domain.VirtualBlock{
			ID:          fmt.Sprintf("%s_part%d", block.ID, len(parts)),
			RecurringID: block.RecurringID,
			Title:       block.Title,
			Start:       r.zone.At(day, from),
			End:         r.zone.At(day, to),
		})
	}

	for _, cut := range merged {
		if cursor < cut.start {
			emit(cursor, cut.start)
		}
		cursor = cut.end
	}

	if cursor < blockEnd {
		emit(cursor, blockEnd)
	}

	return parts
}

// mergeIntervals сортирует интервалы по началу и объединяет касающиеся и пересекающиеся
func mergeIntervals(cuts []interval) []interval {
	sort.Slice(cuts, func(i, j int) bool {
		return cuts[i].start < cuts[j].start
	})

	merged := make([]interval, 0, len(cuts))
	for _, cut := range cuts {
		if len(merged) == 0 {
			merged = append(merged, cut)
			continue
		}
		last := &merged[len(merged)-1]
		if cut.start <= last.end {
			last.end = max(last.end, cut.end)
		} else {
			merged = append(merged, cut)
		}
	}
	return merged
}
