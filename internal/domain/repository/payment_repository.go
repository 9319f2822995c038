package repository

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id string) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]entity.Payment, error)
	Count(ctx context.Context) (int64, error)
}
