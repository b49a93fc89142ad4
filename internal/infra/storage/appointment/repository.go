package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/psqlbuilder"
)

const tableName = "appointments"

// Repository репозиторий записей пациентов (только чтение)
// Записи ведет внешний модуль агенды, календарю нужны лишь интервалы занятости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserAndPeriod возвращает записи пользователя, начинающиеся в [from, to), по возрастанию начала
// Отмененные и личные записи не отфильтровываются: это решает резолвер
func (r *Repository) GetByUserAndPeriod(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*domain.Appointment, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: GetByUserAndPeriod - from=%s to=%s", ErrInvalidPeriod, from, to)
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"patient_name",
		"professional",
		"start",
		`"end"`,
		"is_personal",
		"status",
	).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"start": from}).
		Where(squirrel.Lt{"start": to}).
		OrderBy("start ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		var a domain.Appointment
		var patientName, professional, status sql.NullString
		var isPersonal sql.NullBool

		err := rows.Scan(
			&a.ID,
			&a.UserID,
			&patientName,
			&professional,
			&a.Start,
			&a.End,
			&isPersonal,
			&status,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserAndPeriod - scan row: %v", ErrScanRow, err)
		}

		a.PatientName = patientName.String
		a.Professional = professional.String
		a.IsPersonal = isPersonal.Valid && isPersonal.Bool
		a.Status = domain.ParseAppointmentStatus(status.String)

		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserAndPeriod - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
