package recurring_block

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/txmanager"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

var (
	testUserID  = uuid.MustParse("7b0f1c2e-3a4d-4e5f-8a9b-0c1d2e3f4a5b")
	testBlockID = uuid.MustParse("0f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a")
	testNow     = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func blockRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO recurring_blocks \(id,user_id,title,start_time,end_time,days_of_week,active\)`).
		WithArgs(sqlmock.AnyArg(), testUserID.String(), "Almoço", "12:00", "13:00", "{1,2,3,4,5}", true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(testNow, testNow))

	block, err := repo.Create(context.Background(), &domain.RecurringBlock{
		UserID:     testUserID,
		Title:      "Almoço",
		StartTime:  "12:00",
		EndTime:    "13:00",
		DaysOfWeek: []int{1, 2, 3, 4, 5},
		Active:     true,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, block.ID)
	assert.Equal(t, testNow, block.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`INSERT INTO recurring_blocks`).WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.RecurringBlock{
		ID:        testBlockID,
		UserID:    testUserID,
		Title:     "Almoço",
		StartTime: "12:00",
		EndTime:   "13:00",
	})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM recurring_blocks WHERE id = \$1 AND user_id = \$2$`).
		WithArgs(testBlockID.String(), testUserID.String()).
		WillReturnRows(blockRows().AddRow(
			testBlockID.String(), testUserID.String(), "Almoço", "12:00:00", "13:00:00", "{1,3,5}", nil, testNow, testNow,
		))

	block, err := repo.GetByID(context.Background(), testBlockID, testUserID)

	require.NoError(t, err)
	assert.Equal(t, testBlockID, block.ID)
	assert.Equal(t, types.TimeString("12:00"), block.StartTime)
	assert.Equal(t, types.TimeString("13:00"), block.EndTime)
	assert.Equal(t, []int{1, 3, 5}, block.DaysOfWeek)
	assert.True(t, block.Active) // NULL
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM recurring_blocks`).WillReturnRows(blockRows())

	_, err := repo.GetByID(context.Background(), testBlockID, testUserID)

	assert.ErrorIs(t, err, ErrRecurringBlockNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_LocksRowInTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	tm := txmanager.NewSimpleTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .+ FROM recurring_blocks WHERE id = \$1 AND user_id = \$2 FOR UPDATE`).
		WillReturnRows(blockRows().AddRow(
			testBlockID.String(), testUserID.String(), "Almoço", "12:00", "13:00", "{1}", true, testNow, testNow,
		))
	mock.ExpectCommit()

	err := tm.Do(context.Background(), func(ctx context.Context) error {
		_, err := repo.GetByID(ctx, testBlockID, testUserID)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByUserID(t *testing.T) {
	tests := []struct {
		name       string
		onlyActive bool
		query      string
		args       []driver.Value
	}{
		{
			name:  "all blocks",
			query: `SELECT .+ FROM recurring_blocks WHERE user_id = \$1 ORDER BY start_time ASC, created_at ASC`,
			args:  []driver.Value{testUserID.String()},
		},
		{
			name:       "only active",
			onlyActive: true,
			query:      `SELECT .+ FROM recurring_blocks WHERE user_id = \$1 AND active = \$2 ORDER BY start_time ASC`,
			args:       []driver.Value{testUserID.String(), true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewRepository(db)

			mock.ExpectQuery(tt.query).
				WithArgs(tt.args...).
				WillReturnRows(blockRows().
					AddRow(uuid.NewString(), testUserID.String(), "Café", "08:00", "08:30", "{1,2}", true, testNow, testNow).
					AddRow(uuid.NewString(), testUserID.String(), "Almoço", "12:00", "13:00", "{1,2,3,4,5}", true, testNow, testNow))

			blocks, err := repo.GetByUserID(context.Background(), testUserID, tt.onlyActive)

			require.NoError(t, err)
			require.Len(t, blocks, 2)
			assert.Equal(t, "Café", blocks[0].Title)
			assert.Equal(t, []int{1, 2, 3, 4, 5}, blocks[1].DaysOfWeek)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByUserID_Empty(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM recurring_blocks`).WillReturnRows(blockRows())

	blocks, err := repo.GetByUserID(context.Background(), testUserID, false)

	require.NoError(t, err)
	assert.NotNil(t, blocks)
	assert.Empty(t, blocks)
}

func TestRepository_Update(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	title := "Almoço longo"
	end := types.TimeString("14:00")

	mock.ExpectQuery(`UPDATE recurring_blocks SET title = \$1, end_time = \$2, updated_at = NOW\(\) WHERE id = \$3 AND user_id = \$4 RETURNING id, user_id`).
		WithArgs(title, "14:00", testBlockID.String(), testUserID.String()).
		WillReturnRows(blockRows().AddRow(
			testBlockID.String(), testUserID.String(), title, "12:00", "14:00", "{1}", true, testNow, testNow,
		))

	block, err := repo.Update(context.Background(), testBlockID, testUserID, domain.RecurringBlockPatch{
		Title:   &title,
		EndTime: &end,
	})

	require.NoError(t, err)
	assert.Equal(t, title, block.Title)
	assert.Equal(t, end, block.EndTime)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_Errors(t *testing.T) {
	t.Run("empty patch", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)

		_, err := repo.Update(context.Background(), testBlockID, testUserID, domain.RecurringBlockPatch{})

		assert.ErrorIs(t, err, ErrEmptyPatch)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMock(t)
		repo := NewRepository(db)
		active := false

		mock.ExpectQuery(`UPDATE recurring_blocks SET active = \$1`).WillReturnRows(blockRows())

		_, err := repo.Update(context.Background(), testBlockID, testUserID, domain.RecurringBlockPatch{Active: &active})

		assert.ErrorIs(t, err, ErrRecurringBlockNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "not found", result: sqlmock.NewResult(0, 0), wantErr: ErrRecurringBlockNotFound},
		{name: "exec error", execErr: errors.New("deadlock"), wantErr: ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			repo := NewRepository(db)

			exp := mock.ExpectExec(`DELETE FROM recurring_blocks WHERE id = \$1 AND user_id = \$2`).
				WithArgs(testBlockID.String(), testUserID.String())
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.Delete(context.Background(), testBlockID, testUserID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
