package usecase

import (
	"context"
	"errors"
	"time"

	"clinicdesk/internal/converter"
	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/service"
	"clinicdesk/pkg/idgen"

	"github.com/sirupsen/logrus"
)

var ErrInvalidDateOfBirth = errors.New("invalid date of birth, use YYYY-MM-DD")

const dateOfBirthLayout = "2006-01-02"

type PatientUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error)
	ListPatients(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	ids          idgen.Generator
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	ids idgen.Generator,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		ids:          ids,
		auditService: auditService,
	}
}

func (u *patientUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if _, err := time.Parse(dateOfBirthLayout, req.DateOfBirth); err != nil {
		return nil, ErrInvalidDateOfBirth
	}

	patient := &entity.Patient{
		ID:          u.ids.Next(idgen.PrefixPatient),
		Name:        req.Name,
		Phone:       req.Phone,
		Email:       req.Email,
		DateOfBirth: req.DateOfBirth,
	}

	if err := u.patientRepo.Create(ctx, patient); err != nil {
		u.log.Errorf("Failed to insert patient: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionPatientRegister, "patient", patient.ID, patient); err != nil {
		u.log.Warnf("Failed to audit patient %s: %+v", patient.ID, err)
	}

	u.log.Infof("Patient registered: id=%s, name=%s", patient.ID, patient.Name)
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, patientID string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) ListPatients(ctx context.Context) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}
