package repository

import (
	"context"
	"errors"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"

	"gorm.io/gorm"
)

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) domainRepo.ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *entity.Consultation) error {
	// gorm inserts the prescription items along with the consultation.
	return r.db.WithContext(ctx).Create(consultation).Error
}

func (r *consultationRepository) FindByID(ctx context.Context, id string) (*entity.Consultation, error) {
	var consultation entity.Consultation
	err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&consultation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

func (r *consultationRepository) FindAll(ctx context.Context) ([]entity.Consultation, error) {
	var consultations []entity.Consultation
	err := r.db.WithContext(ctx).Preload("Items").Order("created_at, id").Find(&consultations).Error
	if err != nil {
		return nil, err
	}
	return consultations, nil
}

func (r *consultationRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Consultation{}).Count(&total).Error
	return total, err
}
