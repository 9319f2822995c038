package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type invoiceRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Invoice
	order []string
}

func NewInvoiceRepository() domainRepo.InvoiceRepository {
	return &invoiceRepository{items: make(map[string]entity.Invoice)}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[invoice.ID]; !ok {
		r.order = append(r.order, invoice.ID)
	}
	r.items[invoice.ID] = *invoice
	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoice, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &invoice, nil
}

func (r *invoiceRepository) FindAll(ctx context.Context) ([]entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	invoices := make([]entity.Invoice, 0, len(r.order))
	for _, id := range r.order {
		invoices = append(invoices, r.items[id])
	}
	return invoices, nil
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[invoice.ID]; !ok {
		r.order = append(r.order, invoice.ID)
	}
	r.items[invoice.ID] = *invoice
	return nil
}

func (r *invoiceRepository) ExistsForConsultation(ctx context.Context, consultationID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		if r.items[id].ConsultationID == consultationID {
			return true, nil
		}
	}
	return false, nil
}

func (r *invoiceRepository) FindOutstanding(ctx context.Context) ([]entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var invoices []entity.Invoice
	for _, id := range r.order {
		invoice := r.items[id]
		if !invoice.Closed {
			invoices = append(invoices, invoice)
		}
	}
	return invoices, nil
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
