package entity

import "time"

// Patient represents a registered clinic patient. Patients are created on
// registration and never deleted.
type Patient struct {
	ID          string    `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Email       string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	DateOfBirth string    `gorm:"type:varchar(10)" json:"date_of_birth"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Patient) TableName() string {
	return "patients"
}
