package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

// RecurringBlock represents a weekly agenda block of a clinic user,
// e.g. "Lunch" Monday to Friday from 12:00 to 13:00
type RecurringBlock struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Title      string
	StartTime  types.TimeString
	EndTime    types.TimeString
	DaysOfWeek []int // 0 = Sunday, 1 = Monday, ..., 6 = Saturday
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AppliesOn returns true if the block is active and repeats on the given weekday
func (b *RecurringBlock) AppliesOn(weekday int) bool {
	if !b.Active {
		return false
	}
	for _, d := range b.DaysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}

// Interval returns the block bounds as minutes since midnight
func (b *RecurringBlock) Interval() (start, end int, err error) {
	start, err = b.StartTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	end, err = b.EndTime.Minutes()
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// RecurringBlockPatch partial update of a recurring block, nil fields are left untouched
type RecurringBlockPatch struct {
	Title      *string
	StartTime  *types.TimeString
	EndTime    *types.TimeString
	DaysOfWeek []int
	Active     *bool
}

// IsEmpty returns true if the patch changes nothing
func (p *RecurringBlockPatch) IsEmpty() bool {
	return p.Title == nil && p.StartTime == nil && p.EndTime == nil && p.DaysOfWeek == nil && p.Active == nil
}

// Apply returns a copy of the block with the patch applied
func (p *RecurringBlockPatch) Apply(b RecurringBlock) RecurringBlock {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.StartTime != nil {
		b.StartTime = *p.StartTime
	}
	if p.EndTime != nil {
		b.EndTime = *p.EndTime
	}
	if p.DaysOfWeek != nil {
		b.DaysOfWeek = append([]int(nil), p.DaysOfWeek...)
	}
	if p.Active != nil {
		b.Active = *p.Active
	}
	return b
}

// NormalizeDaysOfWeek returns a sorted copy of days without duplicates
func NormalizeDaysOfWeek(days []int) []int {
	seen := make(map[int]struct{}, len(days))
	result := make([]int, 0, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	sort.Ints(result)
	return result
}
