package resolver

import (
	"errors"

	"github.com/m04kA/SMC-ClinicScheduleService/pkg/types"
)

var (
	// ErrInvalidTimeFormat возвращается, когда время правила не в формате HH:MM[:SS]
	ErrInvalidTimeFormat = types.ErrInvalidTimeFormat

	// ErrEmptyInterval возвращается, когда начало правила не раньше его конца
	ErrEmptyInterval = errors.New("resolver: rule start time must be before end time")
)

// Причины пропуска правила для метрик
const (
	skipReasonTimeFormat = "invalid_time_format"
	skipReasonInterval   = "empty_interval"
)
