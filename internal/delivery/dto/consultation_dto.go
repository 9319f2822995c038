package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

// PrescriptionItemRequest carries one prescription line. Quantity and unit
// price bounds are business rules, not request-shape rules: an out-of-range
// item is rejected individually without failing the whole consultation.
type PrescriptionItemRequest struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type RecordConsultationRequest struct {
	AppointmentID string                    `json:"appointment_id" validate:"required"`
	Notes         string                    `json:"notes"`
	Items         []PrescriptionItemRequest `json:"items" validate:"omitempty,dive"`
}

// Response DTOs

type PrescriptionItemResponse struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type ConsultationResponse struct {
	ID            string                     `json:"id"`
	AppointmentID string                     `json:"appointment_id"`
	Notes         string                     `json:"notes,omitempty"`
	Items         []PrescriptionItemResponse `json:"items"`
	ItemsTotal    decimal.Decimal            `json:"items_total"`
	// Names of prescription lines dropped for invalid quantity or price.
	RejectedItems []string  `json:"rejected_items,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
