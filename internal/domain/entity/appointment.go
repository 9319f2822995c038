package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// SlotLayout is the wire format for appointment slots, minute precision.
const SlotLayout = "2006-01-02 15:04"

// Appointment represents one patient/doctor appointment at an exact
// minute-precision slot. Status is the only mutable field and moves forward
// only: scheduled -> completed, or scheduled -> cancelled.
//
// Invariant: a doctor never holds two scheduled appointments at the identical
// slot instant.
type Appointment struct {
	ID        string            `gorm:"type:varchar(20);primaryKey" json:"id"`
	PatientID string            `gorm:"type:varchar(20);not null;index" json:"patient_id"`
	DoctorID  string            `gorm:"type:varchar(20);not null;index" json:"doctor_id"`
	Slot      time.Time         `gorm:"not null;index" json:"slot"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsScheduled checks if the appointment still occupies its slot
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Complete changes appointment status to completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}
