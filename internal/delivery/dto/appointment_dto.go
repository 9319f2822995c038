package dto

import "time"

// Request DTOs

type ScheduleAppointmentRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	DoctorID  string `json:"doctor_id" validate:"required"`
	// Slot format: YYYY-MM-DD HH:MM (minute precision)
	Slot string `json:"slot" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	DoctorID  string    `json:"doctor_id"`
	Slot      string    `json:"slot"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
