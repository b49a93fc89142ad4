package create_recurring_block

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

// CreateRecurringBlockRequest HTTP request model
type CreateRecurringBlockRequest struct {
	Title      string `json:"title"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DaysOfWeek []int  `json:"daysOfWeek"`
	Active     *bool  `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateRecurringBlockRequest) ToServiceRequest(userID uuid.UUID) *models.CreateRecurringBlockRequest {
	return &models.CreateRecurringBlockRequest{
		UserID:     userID,
		Title:      r.Title,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		DaysOfWeek: r.DaysOfWeek,
		Active:     r.Active,
	}
}
