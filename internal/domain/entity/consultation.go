package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Consultation records the outcome of a completed appointment: free-text
// notes plus an ordered list of prescription line items. Exactly one
// consultation is recorded per completed appointment, and it is immutable
// once recorded.
type Consultation struct {
	ID            string             `gorm:"type:varchar(20);primaryKey" json:"id"`
	AppointmentID string             `gorm:"type:varchar(20);not null;index" json:"appointment_id"`
	Notes         string             `gorm:"type:text" json:"notes,omitempty"`
	Items         []PrescriptionItem `gorm:"foreignKey:ConsultationID" json:"items,omitempty"`
	CreatedAt     time.Time          `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Appointment Appointment `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (Consultation) TableName() string {
	return "consultations"
}

// ItemsTotal sums the line totals of all prescription items.
func (c *Consultation) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// PrescriptionItem is a value object: one prescribed medicine line on a
// consultation. Quantity must be positive and unit price non-negative.
type PrescriptionItem struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ConsultationID string          `gorm:"type:varchar(20);not null;index" json:"consultation_id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Quantity       int             `gorm:"not null" json:"quantity"`
	UnitPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

func (PrescriptionItem) TableName() string {
	return "prescription_items"
}

// LineTotal is quantity x unit price.
func (i *PrescriptionItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
