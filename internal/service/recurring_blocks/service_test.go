package recurring_blocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	blockRepo "github.com/m04kA/SMC-ClinicScheduleService/internal/infra/storage/recurring_block"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

type fakeRepo struct {
	blocks map[uuid.UUID]*domain.RecurringBlock
	err    error
}

func newFakeRepo(blocks ...*domain.RecurringBlock) *fakeRepo {
	r := &fakeRepo{blocks: make(map[uuid.UUID]*domain.RecurringBlock)}
	for _, b := range blocks {
		r.blocks[b.ID] = b
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, block *domain.RecurringBlock) (*domain.RecurringBlock, error) {
	if r.err != nil {
		return nil, r.err
	}
	block.ID = uuid.New()
	block.CreatedAt = time.Now()
	block.UpdatedAt = block.CreatedAt
	r.blocks[block.ID] = block
	return block, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.RecurringBlock, error) {
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.blocks[id]
	if !ok || b.UserID != userID {
		return nil, blockRepo.ErrRecurringBlockNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) GetByUserID(_ context.Context, userID uuid.UUID, onlyActive bool) ([]*domain.RecurringBlock, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.RecurringBlock, 0)
	for _, b := range r.blocks {
		if b.UserID == userID && (!onlyActive || b.Active) {
			result = append(result, b)
		}
	}
	return result, nil
}

func (r *fakeRepo) Update(_ context.Context, id, userID uuid.UUID, patch domain.RecurringBlockPatch) (*domain.RecurringBlock, error) {
	b, ok := r.blocks[id]
	if !ok || b.UserID != userID {
		return nil, blockRepo.ErrRecurringBlockNotFound
	}
	next := patch.Apply(*b)
	r.blocks[id] = &next
	return &next, nil
}

func (r *fakeRepo) Delete(_ context.Context, id, userID uuid.UUID) error {
	if r.err != nil {
		return r.err
	}
	b, ok := r.blocks[id]
	if !ok || b.UserID != userID {
		return blockRepo.ErrRecurringBlockNotFound
	}
	delete(r.blocks, id)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var userID = uuid.MustParse("7b0f1c2e-3a4d-4e5f-8a9b-0c1d2e3f4a5b")

func lunchBlock() *domain.RecurringBlock {
	return &domain.RecurringBlock{
		ID:         uuid.New(),
		UserID:     userID,
		Title:      "Almoço",
		StartTime:  "12:00",
		EndTime:    "13:00",
		DaysOfWeek: []int{1, 2, 3, 4, 5},
		Active:     true,
	}
}

func ptr[T any](v T) *T { return &v }

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateRecurringBlockRequest{
		UserID:     userID,
		Title:      "  Almoço  ",
		StartTime:  "12:00:30",
		EndTime:    "13:00",
		DaysOfWeek: []int{5, 1, 3, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "Almoço", resp.Title)
	assert.Equal(t, "12:00", resp.StartTime)
	assert.Equal(t, []int{1, 3, 5}, resp.DaysOfWeek)
	assert.True(t, resp.Active)
	assert.Len(t, repo.blocks, 1)
}

func TestService_Create_Validation(t *testing.T) {
	long := make([]rune, domain.MaxTitleLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		req  models.CreateRecurringBlockRequest
	}{
		{name: "empty title", req: models.CreateRecurringBlockRequest{Title: " ", StartTime: "12:00", EndTime: "13:00", DaysOfWeek: []int{1}}},
		{name: "long title", req: models.CreateRecurringBlockRequest{Title: string(long), StartTime: "12:00", EndTime: "13:00", DaysOfWeek: []int{1}}},
		{name: "bad start", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "noon", EndTime: "13:00", DaysOfWeek: []int{1}}},
		{name: "bad end", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "12:00", EndTime: "25:00", DaysOfWeek: []int{1}}},
		{name: "start equals end", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "12:00", EndTime: "12:00", DaysOfWeek: []int{1}}},
		{name: "start after end", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "14:00", EndTime: "13:00", DaysOfWeek: []int{1}}},
		{name: "day out of range", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "12:00", EndTime: "13:00", DaysOfWeek: []int{7}}},
		{name: "active without days", req: models.CreateRecurringBlockRequest{Title: "A", StartTime: "12:00", EndTime: "13:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo, &fakeTxManager{}, nopLogger{})

			req := tt.req
			req.UserID = userID
			_, err := svc.Create(context.Background(), &req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.blocks)
		})
	}
}

func TestService_Create_InactiveWithoutDays(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeTxManager{}, nopLogger{})

	resp, err := svc.Create(context.Background(), &models.CreateRecurringBlockRequest{
		UserID:    userID,
		Title:     "Rascunho",
		StartTime: "08:00",
		EndTime:   "09:00",
		Active:    ptr(false),
	})

	require.NoError(t, err)
	assert.False(t, resp.Active)
	assert.Equal(t, []int{}, resp.DaysOfWeek)
}

func TestService_Create_RepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("db down")
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	_, err := svc.Create(context.Background(), &models.CreateRecurringBlockRequest{
		UserID: userID, Title: "A", StartTime: "12:00", EndTime: "13:00", DaysOfWeek: []int{1},
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_GetAndList(t *testing.T) {
	own := lunchBlock()
	foreign := lunchBlock()
	foreign.UserID = uuid.New()
	svc := NewService(newFakeRepo(own, foreign), &fakeTxManager{}, nopLogger{})

	resp, err := svc.Get(context.Background(), userID, own.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, resp.ID)

	_, err = svc.Get(context.Background(), userID, foreign.ID)
	assert.ErrorIs(t, err, ErrRecurringBlockNotFound)

	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, own.ID, list[0].ID)
}

func TestService_Update(t *testing.T) {
	block := lunchBlock()
	repo := newFakeRepo(block)
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	resp, err := svc.Update(context.Background(), block.ID, &models.UpdateRecurringBlockRequest{
		UserID:     userID,
		EndTime:    ptr("14:00:59"),
		DaysOfWeek: []int{3, 1},
	})

	require.NoError(t, err)
	assert.Equal(t, "14:00", resp.EndTime)
	assert.Equal(t, []int{1, 3}, resp.DaysOfWeek)
	assert.Equal(t, "Almoço", resp.Title)
	assert.Equal(t, 1, tx.calls)
}

func TestService_Update_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      func(b *domain.RecurringBlock) uuid.UUID
		req     models.UpdateRecurringBlockRequest
		wantErr error
	}{
		{
			name:    "empty request",
			req:     models.UpdateRecurringBlockRequest{},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "start moves past current end",
			req:     models.UpdateRecurringBlockRequest{StartTime: ptr("13:30")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time format",
			req:     models.UpdateRecurringBlockRequest{EndTime: ptr("1pm")},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "clearing days of active block",
			req:     models.UpdateRecurringBlockRequest{DaysOfWeek: []int{}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown block",
			id:      func(*domain.RecurringBlock) uuid.UUID { return uuid.New() },
			req:     models.UpdateRecurringBlockRequest{Title: ptr("Pausa")},
			wantErr: ErrRecurringBlockNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := lunchBlock()
			repo := newFakeRepo(block)
			svc := NewService(repo, &fakeTxManager{}, nopLogger{})

			id := block.ID
			if tt.id != nil {
				id = tt.id(block)
			}
			req := tt.req
			req.UserID = userID

			_, err := svc.Update(context.Background(), id, &req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, types.TimeString("12:00"), repo.blocks[block.ID].StartTime)
		})
	}
}

func TestService_Delete(t *testing.T) {
	block := lunchBlock()
	repo := newFakeRepo(block)
	svc := NewService(repo, &fakeTxManager{}, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), userID, block.ID))
	assert.Empty(t, repo.blocks)

	err := svc.Delete(context.Background(), userID, block.ID)
	assert.ErrorIs(t, err, ErrRecurringBlockNotFound)

	repo.err = errors.New("db down")
	err = svc.Delete(context.Background(), userID, block.ID)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ToggleActive(t *testing.T) {
	block := lunchBlock()
	repo := newFakeRepo(block)
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, nopLogger{})

	resp, err := svc.ToggleActive(context.Background(), userID, block.ID)
	require.NoError(t, err)
	assert.False(t, resp.Active)

	resp, err = svc.ToggleActive(context.Background(), userID, block.ID)
	require.NoError(t, err)
	assert.True(t, resp.Active)
	assert.Equal(t, 2, tx.calls)
}

func TestService_ToggleActive_Errors(t *testing.T) {
	t.Run("activate without days", func(t *testing.T) {
		block := lunchBlock()
		block.Active = false
		block.DaysOfWeek = []int{}
		svc := NewService(newFakeRepo(block), &fakeTxManager{}, nopLogger{})

		_, err := svc.ToggleActive(context.Background(), userID, block.ID)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("foreign block", func(t *testing.T) {
		block := lunchBlock()
		svc := NewService(newFakeRepo(block), &fakeTxManager{}, nopLogger{})

		_, err := svc.ToggleActive(context.Background(), uuid.New(), block.ID)
		assert.ErrorIs(t, err, ErrRecurringBlockNotFound)
	})
}
