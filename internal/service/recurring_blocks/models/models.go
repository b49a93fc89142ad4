package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
)

// Request модели

// CreateRecurringBlockRequest запрос на создание повторяющегося блока
type CreateRecurringBlockRequest struct {
	UserID     uuid.UUID `json:"-"`
	Title      string    `json:"title"`
	StartTime  string    `json:"startTime"`        // HH:MM или HH:MM:SS
	EndTime    string    `json:"endTime"`          // HH:MM или HH:MM:SS
	DaysOfWeek []int     `json:"daysOfWeek"`       // 0 = воскресенье
	Active     *bool     `json:"active,omitempty"` // по умолчанию true
}

// UpdateRecurringBlockRequest запрос на частичное обновление блока
// Все поля опциональны - обновляются только переданные значения
type UpdateRecurringBlockRequest struct {
	UserID     uuid.UUID `json:"-"`
	Title      *string   `json:"title,omitempty"`
	StartTime  *string   `json:"startTime,omitempty"`
	EndTime    *string   `json:"endTime,omitempty"`
	DaysOfWeek []int     `json:"daysOfWeek,omitempty"`
	Active     *bool     `json:"active,omitempty"`
}

// IsEmpty проверяет, что запрос ничего не меняет
func (r *UpdateRecurringBlockRequest) IsEmpty() bool {
	return r.Title == nil && r.StartTime == nil && r.EndTime == nil && r.DaysOfWeek == nil && r.Active == nil
}

// Response модели

// RecurringBlockResponse ответ с данными повторяющегося блока
type RecurringBlockResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	DaysOfWeek []int     `json:"daysOfWeek"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// FromDomainRecurringBlock конвертирует доменную модель в ответ
func FromDomainRecurringBlock(b *domain.RecurringBlock) *RecurringBlockResponse {
	days := b.DaysOfWeek
	if days == nil {
		days = []int{}
	}
	return &RecurringBlockResponse{
		ID:         b.ID,
		Title:      b.Title,
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		DaysOfWeek: days,
		Active:     b.Active,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainRecurringBlocks конвертирует список доменных моделей
func FromDomainRecurringBlocks(blocks []*domain.RecurringBlock) []*RecurringBlockResponse {
	result := make([]*RecurringBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, FromDomainRecurringBlock(b))
	}
	return result
}
