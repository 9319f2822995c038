package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice bills exactly one consultation. ConsultationFee and ItemsTotal are
// snapshots captured at generation time; subtotal, tax and total are derived
// from them on every read and never stored. Once closed the invoice is
// immutable.
type Invoice struct {
	ID              string          `gorm:"type:varchar(20);primaryKey" json:"id"`
	ConsultationID  string          `gorm:"type:varchar(20);not null;uniqueIndex" json:"consultation_id"`
	ConsultationFee decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"consultation_fee"`
	ItemsTotal      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"items_total"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(5,4);not null" json:"tax_rate"`
	Closed          bool            `gorm:"not null;default:false;index" json:"closed"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Consultation Consultation `gorm:"foreignKey:ConsultationID" json:"consultation,omitempty"`
}

func (Invoice) TableName() string {
	return "invoices"
}

// Subtotal is consultation fee plus prescription items total.
func (i *Invoice) Subtotal() decimal.Decimal {
	return i.ConsultationFee.Add(i.ItemsTotal)
}

// Tax is subtotal x tax rate.
func (i *Invoice) Tax() decimal.Decimal {
	return i.Subtotal().Mul(i.TaxRate)
}

// Total is subtotal plus tax.
func (i *Invoice) Total() decimal.Decimal {
	return i.Subtotal().Add(i.Tax())
}

// Close marks the invoice settled
func (i *Invoice) Close() {
	i.Closed = true
}
