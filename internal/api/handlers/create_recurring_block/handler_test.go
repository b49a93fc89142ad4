package create_recurring_block

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/api/middleware"
	recurringBlocks "github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks"
	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

type fakeService struct {
	req *models.CreateRecurringBlockRequest
	err error
}

func (f *fakeService) Create(_ context.Context, req *models.CreateRecurringBlockRequest) (*models.RecurringBlockResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.RecurringBlockResponse{ID: uuid.New(), Title: req.Title, Active: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		body       string
		svcErr     error
		wantStatus int
	}{
		{
			name:       "created",
			body:       `{"title":"Almoço","startTime":"12:00","endTime":"13:00","daysOfWeek":[1,2,3,4,5]}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "broken json",
			body:       `{"title":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"title":"Almoço","color":"#fff"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation error",
			body:       `{"title":"Almoço","startTime":"13:00","endTime":"12:00","daysOfWeek":[1]}`,
			svcErr:     fmt.Errorf("%w: startTime must be before endTime", recurringBlocks.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "internal",
			body:       `{"title":"Almoço","startTime":"12:00","endTime":"13:00","daysOfWeek":[1]}`,
			svcErr:     errors.New("db down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.svcErr}
			h := NewHandler(svc, nopLogger{})

			req := httptest.NewRequest(http.MethodPost, "/api/v1/recurring-blocks", strings.NewReader(tt.body))
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
			rec := httptest.NewRecorder()

			h.Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, userID, svc.req.UserID)
				assert.Equal(t, []int{1, 2, 3, 4, 5}, svc.req.DaysOfWeek)
				assert.Nil(t, svc.req.Active)
			}
		})
	}
}
