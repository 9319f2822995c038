package usecase

import (
	"context"
	"errors"

	"clinicdesk/internal/converter"
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/service"
	"clinicdesk/pkg/idgen"

	"github.com/sirupsen/logrus"
)

var ErrNegativeFee = errors.New("consultation fee must not be negative")

type DoctorUsecase interface {
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	ids          idgen.Generator
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	ids idgen.Generator,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		ids:          ids,
		auditService: auditService,
	}
}

func (u *doctorUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.DoctorResponse, error) {
	if req.Fee.IsNegative() {
		return nil, ErrNegativeFee
	}

	doctor := &entity.Doctor{
		ID:             u.ids.Next(idgen.PrefixDoctor),
		Name:           req.Name,
		Phone:          req.Phone,
		Email:          req.Email,
		Specialization: req.Specialization,
		Fee:            req.Fee,
	}

	if err := u.doctorRepo.Create(ctx, doctor); err != nil {
		u.log.Errorf("Failed to insert doctor: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionDoctorRegister, "doctor", doctor.ID, doctor); err != nil {
		u.log.Warnf("Failed to audit doctor %s: %+v", doctor.ID, err)
	}

	u.log.Infof("Doctor registered: id=%s, name=%s, fee=%s", doctor.ID, doctor.Name, doctor.Fee)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", doctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}
