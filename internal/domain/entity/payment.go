package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment settles exactly one invoice. A payment record exists only for
// amounts that settled their invoice; it is never mutated or deleted.
type Payment struct {
	ID        string          `gorm:"type:varchar(20);primaryKey" json:"id"`
	InvoiceID string          `gorm:"type:varchar(20);not null;index" json:"invoice_id"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Receipt   string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"receipt"`
	PaidAt    time.Time       `gorm:"not null" json:"paid_at"`

	// Relationships
	Invoice Invoice `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}
