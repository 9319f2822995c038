// Package memory holds the in-process reference implementations of the
// repository contracts: one table per entity kind, keyed by id, preserving
// insertion order for listing. State lives for the process lifetime.
package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type patientRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Patient
	order []string
}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{items: make(map[string]entity.Patient)}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[patient.ID]; !ok {
		r.order = append(r.order, patient.ID)
	}
	r.items[patient.ID] = *patient
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patient, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	patients := make([]entity.Patient, 0, len(r.order))
	for _, id := range r.order {
		patients = append(patients, r.items[id])
	}
	return patients, nil
}

func (r *patientRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
