// Package civiltime переводит абсолютные моменты времени в гражданское время
// фиксированной таймзоны клиники и обратно.
//
// Все вычисления даты, дня недели и минуты суток выполняются в явно переданной
// таймзоне и никогда не зависят от локальной таймзоны хоста.
package civiltime

import (
	"errors"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

// DefaultTimezone таймзона клиники по умолчанию
const DefaultTimezone = "America/Sao_Paulo"

// DateFormat формат гражданской даты
const DateFormat = "2006-01-02"

const (
	minutesPerDay = 24 * 60
	secondsPerDay = minutesPerDay * 60
)

var (
	// ErrUnknownTimezone возвращается, когда IANA идентификатор не найден
	ErrUnknownTimezone = errors.New("civiltime: unknown timezone")

	// ErrInvalidDate возвращается при некорректной дате
	ErrInvalidDate = errors.New("civiltime: invalid date, expected YYYY-MM-DD")

	// ErrInvalidRange возвращается, когда начало диапазона позже конца
	ErrInvalidRange = errors.New("civiltime: range start is after range end")
)

// Zone фиксированная гражданская таймзона
type Zone struct {
	loc *time.Location
}

// LoadZone загружает таймзону по IANA идентификатору
func LoadZone(name string) (Zone, error) {
	if name == "" {
		name = DefaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Zone{}, fmt.Errorf("%w: %s: %v", ErrUnknownTimezone, name, err)
	}
	return Zone{loc: loc}, nil
}

// NewZone создает Zone из уже загруженной локации
func NewZone(loc *time.Location) Zone {
	return Zone{loc: loc}
}

// Location возвращает локацию таймзоны
func (z Zone) Location() *time.Location {
	if z.loc == nil {
		return time.UTC
	}
	return z.loc
}

// String возвращает IANA имя таймзоны
func (z Zone) String() string {
	return z.Location().String()
}

// MinuteOfDay возвращает минуту суток [0, 1439] момента t по часам таймзоны
func (z Zone) MinuteOfDay(t time.Time) int {
	local := t.In(z.Location())
	return local.Hour()*60 + local.Minute()
}

// DateOf возвращает гражданскую дату (полночь в таймзоне), на которую приходится t
func (z Zone) DateOf(t time.Time) time.Time {
	local := t.In(z.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, z.Location())
}

// SameDate проверяет, что два момента приходятся на одну гражданскую дату
func (z Zone) SameDate(a, b time.Time) bool {
	ya, ma, da := a.In(z.Location()).Date()
	yb, mb, db := b.In(z.Location()).Date()
	return ya == yb && ma == mb && da == db
}

// Weekday возвращает день недели даты в таймзоне (0 = воскресенье)
func (z Zone) Weekday(date time.Time) int {
	return int(date.In(z.Location()).Weekday())
}

// DateKey форматирует гражданскую дату как YYYY-MM-DD
func (z Zone) DateKey(date time.Time) string {
	return date.In(z.Location()).Format(DateFormat)
}

// At возвращает абсолютный момент для даты и минуты суток в таймзоне
// minutes = 1440 означает полночь следующего дня
func (z Zone) At(date time.Time, minutes int) time.Time {
	local := date.In(z.Location())
	return time.Date(local.Year(), local.Month(), local.Day(), 0, minutes, 0, 0, z.Location())
}

// MinutesSince возвращает смещение t в минутах от полуночи гражданской даты date,
// ограниченное отрезком [0, 1440]
// Используется для интервалов, которые начинаются в этот день, а заканчиваются позже
func (z Zone) MinutesSince(date, t time.Time) int {
	if !z.SameDate(date, t) {
		if t.Before(z.At(date, 0)) {
			return 0
		}
		return minutesPerDay
	}
	return z.MinuteOfDay(t)
}

// ParseDate парсит гражданскую дату YYYY-MM-DD в таймзоне
func (z Zone) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, s, z.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// DayCount возвращает число гражданских дат в отрезке [from, to], не разворачивая его
func (z Zone) DayCount(from, to time.Time) (int, error) {
	start := z.DateOf(from)
	end := z.DateOf(to)
	if start.After(end) {
		return 0, ErrInvalidRange
	}

	// считаем по календарным датам в UTC, чтобы переходы на летнее время не сдвигали счет
	a := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((b.Unix()-a.Unix())/secondsPerDay) + 1, nil
}

// Dates возвращает все гражданские даты отрезка [from, to] по порядку
// Перед вызовом на пользовательском диапазоне длину стоит проверить через DayCount
func (z Zone) Dates(from, to time.Time) ([]time.Time, error) {
	start := z.DateOf(from)
	end := z.DateOf(to)
	if start.After(end) {
		return nil, ErrInvalidRange
	}

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: start,
		Until:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("civiltime: build daily rule: %w", err)
	}

	occurrences := r.All()
	dates := make([]time.Time, 0, len(occurrences))
	for _, d := range occurrences {
		dates = append(dates, z.DateOf(d))
	}
	return dates, nil
}
