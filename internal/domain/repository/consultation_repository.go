package repository

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

type ConsultationRepository interface {
	// Create stores the consultation together with its prescription items.
	Create(ctx context.Context, consultation *entity.Consultation) error
	FindByID(ctx context.Context, id string) (*entity.Consultation, error)
	FindAll(ctx context.Context) ([]entity.Consultation, error)
	Count(ctx context.Context) (int64, error)
}
