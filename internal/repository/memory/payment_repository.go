package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type paymentRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Payment
	order []string
}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{items: make(map[string]entity.Payment)}
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[payment.ID]; !ok {
		r.order = append(r.order, payment.ID)
	}
	r.items[payment.ID] = *payment
	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id string) (*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payments := make([]entity.Payment, 0, len(r.order))
	for _, id := range r.order {
		payments = append(payments, r.items[id])
	}
	return payments, nil
}

func (r *paymentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
