// Package preview читает повторяющиеся блоки и записи из JSON файлов и
// печатает рассчитанные виртуальные блоки. Используется офлайн-утилитой
// blocks-preview для проверки правил без базы данных.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/internal/domain"
	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

// RuleInput повторяющийся блок во входном файле
type RuleInput struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	DaysOfWeek []int  `json:"daysOfWeek"`
	Active     *bool  `json:"active,omitempty"` // по умолчанию true
}

// AppointmentInput запись во входном файле, время в RFC3339
type AppointmentInput struct {
	ID         string `json:"id"`
	Start      string `json:"start"`
	End        string `json:"end"`
	IsPersonal bool   `json:"isPersonal"`
	Status     string `json:"status"`
}

// ReadRules читает JSON массив правил
// Правило без id получает id, стабильный для его позиции в файле
// Время правил не валидируется: некорректные правила пропускает резолвер
func ReadRules(r io.Reader) ([]domain.RecurringBlock, error) {
	var raw []RuleInput
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode rules: %v", ErrInvalidInput, err)
	}

	rules := make([]domain.RecurringBlock, 0, len(raw))
	for i, in := range raw {
		id, err := parseOrDeriveID(in.ID, "rule", i)
		if err != nil {
			return nil, fmt.Errorf("%w: rule #%d: %v", ErrInvalidInput, i, err)
		}

		active := true
		if in.Active != nil {
			active = *in.Active
		}

		rules = append(rules, domain.RecurringBlock{
			ID:         id,
			Title:      in.Title,
			StartTime:  types.TimeString(in.StartTime),
			EndTime:    types.TimeString(in.EndTime),
			DaysOfWeek: in.DaysOfWeek,
			Active:     active,
		})
	}
	return rules, nil
}

// ReadAppointments читает JSON массив записей
func ReadAppointments(r io.Reader) ([]domain.Appointment, error) {
	var raw []AppointmentInput
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: decode appointments: %v", ErrInvalidInput, err)
	}

	appointments := make([]domain.Appointment, 0, len(raw))
	for i, in := range raw {
		id, err := parseOrDeriveID(in.ID, "appointment", i)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment #%d: %v", ErrInvalidInput, i, err)
		}
		start, err := time.Parse(time.RFC3339, in.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment #%d start: %v", ErrInvalidInput, i, err)
		}
		end, err := time.Parse(time.RFC3339, in.End)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment #%d end: %v", ErrInvalidInput, i, err)
		}

		appointments = append(appointments, domain.Appointment{
			ID:         id,
			Start:      start,
			End:        end,
			IsPersonal: in.IsPersonal,
			Status:     domain.ParseAppointmentStatus(in.Status),
		})
	}
	return appointments, nil
}

// idNamespace пространство имен для id записей без явного id
var idNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("blocks-preview"))

// parseOrDeriveID парсит id или выводит его из позиции в файле,
// чтобы повторные запуски по одному файлу давали одинаковые id блоков
func parseOrDeriveID(s, kind string, index int) (uuid.UUID, error) {
	if s == "" {
		return uuid.NewSHA1(idNamespace, []byte(fmt.Sprintf("%s/%d", kind, index))), nil
	}
	return uuid.Parse(s)
}
