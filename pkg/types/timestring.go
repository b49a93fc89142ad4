package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

const (
	minutesPerHour = 60
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * minutesPerHour
)

// ErrInvalidTimeFormat возвращается, когда строка не является временем в формате HH:MM или HH:MM:SS
var ErrInvalidTimeFormat = errors.New("types: invalid time format, expected HH:MM")

// TimeString время суток в формате "HH:MM" (без даты и таймзоны)
type TimeString string

// NewTimeString создает TimeString из часов и минут time.Time (в его собственной локации)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются: "12:30:45" -> "12:30"
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(s)
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(minutes)
}

// NewTimeStringFromMinutes создает TimeString из количества минут с полуночи [0, 1439]
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: minutes out of range: %d", ErrInvalidTimeFormat, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/minutesPerHour, minutes%minutesPerHour)), nil
}

// Minutes возвращает количество минут с полуночи
func (t TimeString) Minutes() (int, error) {
	return parseMinutes(string(t))
}

// Validate проверяет корректность значения
func (t TimeString) Validate() error {
	_, err := parseMinutes(string(t))
	return err
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения никогда не сравниваются как "раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// String возвращает строковое представление в формате HH:MM
func (t TimeString) String() string {
	if len(t) > 5 {
		return string(t[:5])
	}
	return string(t)
}

// Scan реализует sql.Scanner для колонок типа time
// Postgres отдает time как "HH:MM:SS", lib/pq иногда как time.Time
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Битые значения из БД не валим на сканировании, валидация происходит при использовании
	if len(s) > 5 {
		s = s[:5]
	}
	*t = TimeString(s)
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t.String(), nil
}

// parseMinutes разбирает "HH:MM" / "HH:MM:SS" в минуты с полуночи
func parseMinutes(s string) (int, error) {
	if len(s) != 5 && len(s) != 8 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	if s[2] != ':' || (len(s) == 8 && s[5] != ':') {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	hours, err := parseTwoDigits(s[0:2])
	if err != nil || hours > 23 {
		return 0, fmt.Errorf("%w: invalid hours in %q", ErrInvalidTimeFormat, s)
	}

	minutes, err := parseTwoDigits(s[3:5])
	if err != nil || minutes > 59 {
		return 0, fmt.Errorf("%w: invalid minutes in %q", ErrInvalidTimeFormat, s)
	}

	// Секунды должны быть корректными, даже если отбрасываются
	if len(s) == 8 {
		seconds, err := parseTwoDigits(s[6:8])
		if err != nil || seconds > 59 {
			return 0, fmt.Errorf("%w: invalid seconds in %q", ErrInvalidTimeFormat, s)
		}
	}

	return hours*minutesPerHour + minutes, nil
}

func parseTwoDigits(s string) (int, error) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrInvalidTimeFormat
	}
	return strconv.Atoi(s)
}
