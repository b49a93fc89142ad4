package get_calendar_blocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/civiltime"
)

// UseCase use case для получения виртуальных повторяющихся блоков календаря
type UseCase struct {
	blockRepo       RecurringBlockRepository
	appointmentRepo AppointmentRepository
	resolver        Resolver
	maxRangeDays    int
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// maxRangeDays <= 0 означает значение по умолчанию domain.MaxCalendarRangeDays
func NewUseCase(
	blockRepo RecurringBlockRepository,
	appointmentRepo AppointmentRepository,
	resolver Resolver,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	if maxRangeDays <= 0 {
		maxRangeDays = domain.MaxCalendarRangeDays
	}
	return &UseCase{
		blockRepo:       blockRepo,
		appointmentRepo: appointmentRepo,
		resolver:        resolver,
		maxRangeDays:    maxRangeDays,
		logger:          logger,
	}
}

// Execute выполняет use case получения виртуальных блоков за период [From, To]
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendarBlocks: validation failed: %v", err)
		return nil, err
	}

	zone := uc.resolver.Zone()
	uc.logger.Info("GetCalendarBlocks: user=%s, from=%s, to=%s",
		req.UserID, zone.DateKey(req.From), zone.DateKey(req.To))

	// 2. Проверяем длину периода до разворачивания дат
	days, err := zone.DayCount(req.From, req.To)
	if err != nil {
		if errors.Is(err, civiltime.ErrInvalidRange) {
			uc.logger.Warn("GetCalendarBlocks: from=%s is after to=%s", zone.DateKey(req.From), zone.DateKey(req.To))
			return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidRange)
		}
		uc.logger.Error("GetCalendarBlocks: failed to count days: %v", err)
		return nil, fmt.Errorf("%w: failed to count days: %v", ErrInternal, err)
	}

	if err := validateRangeLength(days, uc.maxRangeDays); err != nil {
		uc.logger.Warn("GetCalendarBlocks: %v", err)
		return nil, err
	}

	// 3. Разворачиваем видимые даты
	dates, err := zone.Dates(req.From, req.To)
	if err != nil {
		uc.logger.Error("GetCalendarBlocks: failed to expand dates: %v", err)
		return nil, fmt.Errorf("%w: failed to expand dates: %v", ErrInternal, err)
	}

	from := dates[0]
	to := dates[len(dates)-1]

	// 4. Загружаем активные правила пользователя
	rules, err := uc.blockRepo.GetByUserID(ctx, req.UserID, true)
	if err != nil {
		uc.logger.Error("GetCalendarBlocks: failed to get recurring blocks for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get recurring blocks: %v", ErrInternal, err)
	}

	// Без правил записи не нужны
	if len(rules) == 0 {
		return &Response{From: from, To: to, Blocks: []domain.VirtualBlock{}}, nil
	}

	// 5. Загружаем записи, начинающиеся в видимом периоде
	appointments, err := uc.appointmentRepo.GetByUserAndPeriod(ctx, req.UserID, zone.At(from, 0), zone.At(to, 24*60))
	if err != nil {
		uc.logger.Error("GetCalendarBlocks: failed to get appointments for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Вычисляем виртуальные блоки
	blocks := uc.resolver.ResolvePeriod(dates, derefBlocks(rules), derefAppointments(appointments))

	uc.logger.Info("GetCalendarBlocks: user=%s, rules=%d, appointments=%d, blocks=%d",
		req.UserID, len(rules), len(appointments), len(blocks))

	return &Response{
		From:   from,
		To:     to,
		Blocks: blocks,
	}, nil
}

func derefBlocks(blocks []*domain.RecurringBlock) []domain.RecurringBlock {
	result := make([]domain.RecurringBlock, 0, len(blocks))
	for _, b := range blocks {
		if b != nil {
			result = append(result, *b)
		}
	}
	return result
}

func derefAppointments(appointments []*domain.Appointment) []domain.Appointment {
	result := make([]domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a != nil {
			result = append(result, *a)
		}
	}
	return result
}
