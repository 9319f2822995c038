package repository

import (
	"context"
	"time"

	"clinicdesk/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
	// Update persists a status transition. Nothing else on an appointment
	// ever changes.
	Update(ctx context.Context, appointment *entity.Appointment) error
	// ExistsScheduled reports whether the doctor already holds a scheduled
	// appointment at exactly this slot instant.
	ExistsScheduled(ctx context.Context, doctorID string, slot time.Time) (bool, error)
	// FindScheduled returns all appointments still in scheduled status.
	FindScheduled(ctx context.Context) ([]entity.Appointment, error)
	Count(ctx context.Context) (int64, error)
}
