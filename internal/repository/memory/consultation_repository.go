package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type consultationRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Consultation
	order []string
}

func NewConsultationRepository() domainRepo.ConsultationRepository {
	return &consultationRepository{items: make(map[string]entity.Consultation)}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[consultation.ID]; !ok {
		r.order = append(r.order, consultation.ID)
	}
	stored := *consultation
	// Copy the item slice so later caller mutations cannot drift from the
	// authoritative record.
	stored.Items = append([]entity.PrescriptionItem(nil), consultation.Items...)
	r.items[consultation.ID] = stored
	return nil
}

func (r *consultationRepository) FindByID(ctx context.Context, id string) (*entity.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	consultation, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	consultation.Items = append([]entity.PrescriptionItem(nil), consultation.Items...)
	return &consultation, nil
}

func (r *consultationRepository) FindAll(ctx context.Context) ([]entity.Consultation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	consultations := make([]entity.Consultation, 0, len(r.order))
	for _, id := range r.order {
		consultation := r.items[id]
		consultation.Items = append([]entity.PrescriptionItem(nil), consultation.Items...)
		consultations = append(consultations, consultation)
	}
	return consultations, nil
}

func (r *consultationRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
