package list_recurring_blocks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

type fakeService struct {
	blocks []*models.RecurringBlockResponse
	err    error
}

func (f *fakeService) List(context.Context, uuid.UUID) ([]*models.RecurringBlockResponse, error) {
	return f.blocks, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	svc := &fakeService{blocks: []*models.RecurringBlockResponse{
		{ID: uuid.New(), Title: "Almoço", StartTime: "12:00", EndTime: "13:00", DaysOfWeek: []int{1, 2}, Active: true},
	}}
	h := NewHandler(svc, nopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recurring-blocks", nil)
	req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []models.RecurringBlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Almoço", body[0].Title)
}

func TestHandler_Handle_Errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		rec := httptest.NewRecorder()
		NewHandler(&fakeService{}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("internal", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req = req.WithContext(middleware.WithUserID(req.Context(), uuid.New()))
		rec := httptest.NewRecorder()

		NewHandler(&fakeService{err: errors.New("db down")}, nopLogger{}).Handle(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
