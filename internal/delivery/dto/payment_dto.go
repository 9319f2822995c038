package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type RecordPaymentRequest struct {
	InvoiceID string          `json:"invoice_id" validate:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// Response DTOs

type PaymentResponse struct {
	ID        string          `json:"id"`
	InvoiceID string          `json:"invoice_id"`
	Amount    decimal.Decimal `json:"amount"`
	Receipt   string          `json:"receipt"`
	PaidAt    time.Time       `json:"paid_at"`
}
