package repository

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

// PatientRepository is the storage contract for patients. FindAll preserves
// insertion order. No delete: patients are never removed.
type PatientRepository interface {
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
	Count(ctx context.Context) (int64, error)
}
