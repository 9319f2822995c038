package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type GenerateInvoiceRequest struct {
	ConsultationID string `json:"consultation_id" validate:"required"`
	// TaxRate is a fraction in [0,1], e.g. 0.12 for 12%.
	TaxRate decimal.Decimal `json:"tax_rate"`
}

// Response DTOs

type InvoiceResponse struct {
	ID              string          `json:"id"`
	ConsultationID  string          `json:"consultation_id"`
	ConsultationFee decimal.Decimal `json:"consultation_fee"`
	ItemsTotal      decimal.Decimal `json:"items_total"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
	Total           decimal.Decimal `json:"total"`
	Closed          bool            `json:"closed"`
	CreatedAt       time.Time       `json:"created_at"`
}
