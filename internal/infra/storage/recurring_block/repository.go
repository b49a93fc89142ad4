package recurring_block

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/psqlbuilder"
)

const tableName = "recurring_blocks"

var columns = []string{
	"id",
	"user_id",
	"title",
	"start_time",
	"end_time",
	"days_of_week",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий повторяющихся блоков агенды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория повторяющихся блоков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый повторяющийся блок
// ID генерируется на стороне сервиса, если не задан
func (r *Repository) Create(ctx context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if block.ID == uuid.Nil {
		block.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"id",
			"user_id",
			"title",
			"start_time",
			"end_time",
			"days_of_week",
			"active",
		).
		Values(
			block.ID,
			block.UserID,
			block.Title,
			block.StartTime,
			block.EndTime,
			toInt64Array(block.DaysOfWeek),
			block.Active,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return block, nil
}

// GetByID получает блок пользователя по ID
// Блок другого пользователя считается не найденным
func (r *Repository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id, "user_id": userID})

	// Внутри транзакции блокируем строку для последующего обновления
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecurringBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan recurring block: %v", ErrScanRow, err)
	}

	return block, nil
}

// GetByUserID получает блоки пользователя, отсортированные по времени начала
// onlyActive = true исключает выключенные блоки
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID, onlyActive bool) ([]*domain.RecurringBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID})

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.
		OrderBy("start_time ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocks := make([]*domain.RecurringBlock, 0)
	for rows.Next() {
		block, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		blocks = append(blocks, block)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return blocks, nil
}

// Update частично обновляет блок пользователя и возвращает его новое состояние
// Обновляются только поля патча, отличные от nil
func (r *Repository) Update(ctx context.Context, id, userID uuid.UUID, patch domain.RecurringBlockPatch) (*domain.RecurringBlock, error) {
	if patch.IsEmpty() {
		return nil, ErrEmptyPatch
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableName)
	if patch.Title != nil {
		updateBuilder = updateBuilder.Set("title", *patch.Title)
	}
	if patch.StartTime != nil {
		updateBuilder = updateBuilder.Set("start_time", *patch.StartTime)
	}
	if patch.EndTime != nil {
		updateBuilder = updateBuilder.Set("end_time", *patch.EndTime)
	}
	if patch.DaysOfWeek != nil {
		updateBuilder = updateBuilder.Set("days_of_week", toInt64Array(patch.DaysOfWeek))
	}
	if patch.Active != nil {
		updateBuilder = updateBuilder.Set("active", *patch.Active)
	}

	query, args, err := updateBuilder.
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	block, err := scanBlock(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRecurringBlockNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return block, nil
}

// Delete удаляет блок пользователя
func (r *Repository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRecurringBlockNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBlock сканирует строку в доменную модель, порядок колонок как в columns
func scanBlock(row rowScanner) (*domain.RecurringBlock, error) {
	var block domain.RecurringBlock
	var days pq.Int64Array
	var active sql.NullBool
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&block.ID,
		&block.UserID,
		&block.Title,
		&block.StartTime,
		&block.EndTime,
		&days,
		&active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	block.DaysOfWeek = make([]int, len(days))
	for i, d := range days {
		block.DaysOfWeek[i] = int(d)
	}
	// NULL в active трактуется как включенный блок
	block.Active = !active.Valid || active.Bool
	block.CreatedAt = createdAt.Time
	block.UpdatedAt = updatedAt.Time

	return &block, nil
}

func toInt64Array(days []int) pq.Int64Array {
	result := make(pq.Int64Array, len(days))
	for i, d := range days {
		result[i] = int64(d)
	}
	return result
}
