package dto

import "time"

// Request DTOs

type RegisterPatientRequest struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"omitempty,min=6,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	DateOfBirth string `json:"date_of_birth" validate:"required"`
}

// Response DTOs

type PatientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
