package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type RegisterDoctorRequest struct {
	Name           string          `json:"name" validate:"required"`
	Phone          string          `json:"phone" validate:"omitempty,min=6,max=20"`
	Email          string          `json:"email" validate:"omitempty,email"`
	Specialization string          `json:"specialization" validate:"required"`
	Fee            decimal.Decimal `json:"fee"`
}

// Response DTOs

type DoctorResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Phone          string          `json:"phone,omitempty"`
	Email          string          `json:"email,omitempty"`
	Specialization string          `json:"specialization"`
	Fee            decimal.Decimal `json:"fee"`
	CreatedAt      time.Time       `json:"created_at"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
