package update_recurring_block

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/service/recurring_blocks/models"
)

// UpdateRecurringBlockRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateRecurringBlockRequest struct {
	Title      *string `json:"title,omitempty"`
	StartTime  *string `json:"startTime,omitempty"`
	EndTime    *string `json:"endTime,omitempty"`
	DaysOfWeek []int   `json:"daysOfWeek,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateRecurringBlockRequest) ToServiceRequest(userID uuid.UUID) *models.UpdateRecurringBlockRequest {
	return &models.UpdateRecurringBlockRequest{
		UserID:     userID,
		Title:      r.Title,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
		DaysOfWeek: r.DaysOfWeek,
		Active:     r.Active,
	}
}
