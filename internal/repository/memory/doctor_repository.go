package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type doctorRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Doctor
	order []string
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{items: make(map[string]entity.Doctor)}
}

func (r *doctorRepository) Create(ctx context.Context, doctor *entity.Doctor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[doctor.ID]; !ok {
		r.order = append(r.order, doctor.ID)
	}
	r.items[doctor.ID] = *doctor
	return nil
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctor, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doctors := make([]entity.Doctor, 0, len(r.order))
	for _, id := range r.order {
		doctors = append(doctors, r.items[id])
	}
	return doctors, nil
}

func (r *doctorRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
