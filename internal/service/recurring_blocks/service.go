package recurring_blocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	blockRepo "github.com/m04kA/SMC-ClinicScheduleService/internal/infra/storage/recurring_block"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

// Service сервис для работы с повторяющимися блоками агенды
type Service struct {
	blockRepo RecurringBlockRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса повторяющихся блоков
func NewService(
	blockRepo RecurringBlockRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает все блоки пользователя, включая выключенные
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*models.RecurringBlockResponse, error) {
	s.logger.Info("List: fetching recurring blocks for user=%s", userID)

	blocks, err := s.blockRepo.GetByUserID(ctx, userID, false)
	if err != nil {
		s.logger.Error("List: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d recurring blocks for user=%s", len(blocks), userID)
	return models.FromDomainRecurringBlocks(blocks), nil
}

// Get возвращает блок пользователя по ID
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (*models.RecurringBlockResponse, error) {
	s.logger.Info("Get: fetching recurring block id=%s for user=%s", id, userID)

	block, err := s.blockRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, s.translateRepoError("Get", id, err)
	}

	return models.FromDomainRecurringBlock(block), nil
}

// Create создает новый повторяющийся блок
// Время нормализуется до HH:MM, дни недели сортируются без повторов
func (s *Service) Create(ctx context.Context, req *models.CreateRecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	s.logger.Info("Create: creating recurring block %q for user=%s", req.Title, req.UserID)

	// 1. Разбираем время
	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		s.logger.Warn("Create: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		s.logger.Warn("Create: invalid end time %q: %v", req.EndTime, err)
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	block := &domain.RecurringBlock{
		UserID:     req.UserID,
		Title:      strings.TrimSpace(req.Title),
		StartTime:  startTime,
		EndTime:    endTime,
		DaysOfWeek: req.DaysOfWeek,
		Active:     active,
	}

	// 2. Валидируем блок целиком
	if err := validateBlock(block); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}
	block.DaysOfWeek = domain.NormalizeDaysOfWeek(block.DaysOfWeek)

	// 3. Сохраняем
	created, err := s.blockRepo.Create(ctx, block)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created recurring block id=%s", created.ID)
	return models.FromDomainRecurringBlock(created), nil
}

// Update частично обновляет блок пользователя
// Итоговое состояние блока валидируется целиком, поэтому чтение и запись идут в одной транзакции
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateRecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	s.logger.Info("Update: updating recurring block id=%s for user=%s", id, req.UserID)

	if req.IsEmpty() {
		s.logger.Warn("Update: empty update for recurring block id=%s", id)
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	patch, err := toPatch(req)
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, err
	}

	var updated *domain.RecurringBlock
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.blockRepo.GetByID(ctx, id, req.UserID)
		if err != nil {
			return s.translateRepoError("Update", id, err)
		}

		next := patch.Apply(*current)
		if err := validateBlock(&next); err != nil {
			s.logger.Warn("Update: validation failed for recurring block id=%s: %v", id, err)
			return err
		}

		updated, err = s.blockRepo.Update(ctx, id, req.UserID, patch)
		if err != nil {
			return s.translateRepoError("Update", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: successfully updated recurring block id=%s", id)
	return models.FromDomainRecurringBlock(updated), nil
}

// Delete удаляет блок пользователя
// Виртуальные блоки не хранятся, поэтому удаление правила сразу убирает их из календаря
func (s *Service) Delete(ctx context.Context, userID, id uuid.UUID) error {
	s.logger.Info("Delete: deleting recurring block id=%s for user=%s", id, userID)

	if err := s.blockRepo.Delete(ctx, id, userID); err != nil {
		return s.translateRepoError("Delete", id, err)
	}

	s.logger.Info("Delete: successfully deleted recurring block id=%s", id)
	return nil
}

// ToggleActive включает или выключает блок
// Включение блока без дней недели запрещено
func (s *Service) ToggleActive(ctx context.Context, userID, id uuid.UUID) (*models.RecurringBlockResponse, error) {
	s.logger.Info("ToggleActive: toggling recurring block id=%s for user=%s", id, userID)

	var updated *domain.RecurringBlock
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.blockRepo.GetByID(ctx, id, userID)
		if err != nil {
			return s.translateRepoError("ToggleActive", id, err)
		}

		active := !current.Active
		if active && len(current.DaysOfWeek) == 0 {
			s.logger.Warn("ToggleActive: recurring block id=%s has no days of week", id)
			return fmt.Errorf("%w: cannot activate a block without days of week", ErrInvalidInput)
		}

		updated, err = s.blockRepo.Update(ctx, id, userID, domain.RecurringBlockPatch{Active: &active})
		if err != nil {
			return s.translateRepoError("ToggleActive", id, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("ToggleActive: recurring block id=%s is now active=%t", id, updated.Active)
	return models.FromDomainRecurringBlock(updated), nil
}

func (s *Service) translateRepoError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, blockRepo.ErrRecurringBlockNotFound) {
		s.logger.Warn("%s: recurring block id=%s not found", op, id)
		return ErrRecurringBlockNotFound
	}
	s.logger.Error("%s: repository error for recurring block id=%s: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

func toPatch(req *models.UpdateRecurringBlockRequest) (domain.RecurringBlockPatch, error) {
	patch := domain.RecurringBlockPatch{
		Active: req.Active,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		patch.Title = &title
	}
	if req.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return patch, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
		}
		patch.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return patch, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
		}
		patch.EndTime = &endTime
	}
	if req.DaysOfWeek != nil {
		if err := validateDays(req.DaysOfWeek); err != nil {
			return patch, err
		}
		patch.DaysOfWeek = domain.NormalizeDaysOfWeek(req.DaysOfWeek)
	}

	return patch, nil
}

// validateBlock проверяет бизнес-правила блока
func validateBlock(b *domain.RecurringBlock) error {
	if b.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(b.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", ErrInvalidInput, domain.MaxTitleLength)
	}

	if !b.StartTime.IsBefore(b.EndTime) {
		return fmt.Errorf("%w: startTime %s must be before endTime %s", ErrInvalidInput, b.StartTime, b.EndTime)
	}

	if err := validateDays(b.DaysOfWeek); err != nil {
		return err
	}
	if b.Active && len(b.DaysOfWeek) == 0 {
		return fmt.Errorf("%w: active block needs at least one day of week", ErrInvalidInput)
	}

	return nil
}

func validateDays(days []int) error {
	for _, d := range days {
		if d < domain.MinDayOfWeek || d > domain.MaxDayOfWeek {
			return fmt.Errorf("%w: day of week %d out of range [%d, %d]",
				ErrInvalidInput, d, domain.MinDayOfWeek, domain.MaxDayOfWeek)
		}
	}
	return nil
}
