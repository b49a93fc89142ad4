package domain

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusDone      AppointmentStatus = "done"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a patient appointment (only the fields the calendar needs)
type Appointment struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	PatientName  string
	Professional string
	Start        time.Time
	End          time.Time
	IsPersonal   bool // личная запись врача, не занимает рабочее время
	Status       AppointmentStatus
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// BlocksAgenda returns true if the appointment occupies time that recurring blocks must yield
func (a *Appointment) BlocksAgenda() bool {
	return !a.IsPersonal && !a.IsCancelled()
}

// ParseAppointmentStatus converts a raw column value, empty means scheduled
func ParseAppointmentStatus(s string) AppointmentStatus {
	if s == "" {
		return StatusScheduled
	}
	return AppointmentStatus(s)
}
