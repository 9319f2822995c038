package repository

import (
	"context"

	"clinicdesk/internal/domain/entity"
)

type DoctorRepository interface {
	Create(ctx context.Context, doctor *entity.Doctor) error
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
	Count(ctx context.Context) (int64, error)
}
