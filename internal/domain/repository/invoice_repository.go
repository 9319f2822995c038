package repository

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id string) (*entity.Invoice, error)
	FindAll(ctx context.Context) ([]entity.Invoice, error)
	// Update persists the closed flag. A closed invoice never changes again.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// ExistsForConsultation reports whether the consultation is already
	// invoiced.
	ExistsForConsultation(ctx context.Context, consultationID string) (bool, error)
	// FindOutstanding returns open invoices in insertion order.
	FindOutstanding(ctx context.Context) ([]entity.Invoice, error)
	Count(ctx context.Context) (int64, error)
}
