package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Doctor represents a registered doctor with a consultation fee. The fee on
// this record is the doctor's current fee; invoices snapshot it at generation
// time and are not affected by later changes here.
type Doctor struct {
	ID             string          `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	Phone          string          `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email          string          `gorm:"type:varchar(255)" json:"email,omitempty"`
	Specialization string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Fee            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"fee"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
