package domain

// Business validation constants
const (
	MaxTitleLength       = 100
	MinDayOfWeek         = 0 // Sunday
	MaxDayOfWeek         = 6 // Saturday
	MaxCalendarRangeDays = 62
)

// TimeFormat формат времени HH:MM
const TimeFormat = "15:04"
