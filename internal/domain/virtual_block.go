package domain

import (
	"time"

	"github.com/google/uuid"
)

// VirtualBlock is a recurring block expanded onto one concrete date.
// Virtual blocks are derived on every request and never persisted.
type VirtualBlock struct {
	ID          string // {recurringId}_{YYYY-MM-DD}, with _partN suffix when split
	RecurringID uuid.UUID
	Title       string
	Start       time.Time
	End         time.Time
}

// Duration returns the length of the block
func (b *VirtualBlock) Duration() time.Duration {
	return b.End.Sub(b.Start)
}
