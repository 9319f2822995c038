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

var (
	ErrPatientNotFound         = errors.New("patient not found")
	ErrDoctorNotFound          = errors.New("doctor not found")
	ErrAppointmentNotFound     = errors.New("appointment not found")
	ErrSlotConflict            = errors.New("doctor already has a scheduled appointment at this slot")
	ErrAppointmentNotScheduled = errors.New("appointment is not in scheduled status")
	ErrInvalidSlotFormat       = errors.New("invalid slot format, use YYYY-MM-DD HH:MM")
)

type SchedulingUsecase interface {
	ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error)
}

type schedulingUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	appointmentRepo repository.AppointmentRepository
	ids             idgen.Generator
	slots           *service.SlotReservationService
	auditService    service.AuditService
}

func NewSchedulingUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	ids idgen.Generator,
	slots *service.SlotReservationService,
	auditService service.AuditService,
) SchedulingUsecase {
	return &schedulingUsecase{
		log:             log,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		appointmentRepo: appointmentRepo,
		ids:             ids,
		slots:           slots,
		auditService:    auditService,
	}
}

// ScheduleAppointment books a doctor for a patient at an exact
// minute-precision slot.
//
// Flow:
// 1. Resolve patient and doctor
// 2. Conflict check: same doctor, same slot instant, still scheduled
// 3. Optional redis slot claim (makes check+insert atomic under concurrency)
// 4. Insert appointment in scheduled status
// 5. If insert fails -> compensate: release the redis claim
//
// The comparison is exact slot equality. Back-to-back or overlapping-by-
// duration bookings are allowed.
func (u *schedulingUsecase) ScheduleAppointment(ctx context.Context, req *dto.ScheduleAppointmentRequest) (*dto.AppointmentResponse, error) {
	slot, err := time.Parse(entity.SlotLayout, req.Slot)
	if err != nil {
		return nil, ErrInvalidSlotFormat
	}
	slot = slot.UTC().Truncate(time.Minute)

	patient, err := u.patientRepo.FindByID(ctx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	taken, err := u.appointmentRepo.ExistsScheduled(ctx, doctor.ID, slot)
	if err != nil {
		u.log.Warnf("Failed slot conflict check for doctor %s: %+v", doctor.ID, err)
		return nil, err
	}
	if taken {
		return nil, ErrSlotConflict
	}

	if u.slots != nil {
		if err := u.slots.Reserve(ctx, doctor.ID, slot); err != nil {
			if errors.Is(err, service.ErrSlotTaken) {
				return nil, ErrSlotConflict
			}
			return nil, err
		}
	}

	appointment := &entity.Appointment{
		ID:        u.ids.Next(idgen.PrefixAppointment),
		PatientID: patient.ID,
		DoctorID:  doctor.ID,
		Slot:      slot,
		Status:    entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Errorf("Failed to insert appointment, compensating slot claim: %+v", err)
		if u.slots != nil {
			if releaseErr := u.slots.Release(ctx, doctor.ID, slot); releaseErr != nil {
				u.log.Errorf("Failed to release slot claim for doctor %s: %+v", doctor.ID, releaseErr)
			}
		}
		// Lost insert race against the partial unique index
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrSlotConflict
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionAppointmentSchedule, "appointment", appointment.ID, appointment); err != nil {
		u.log.Warnf("Failed to audit appointment %s: %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment scheduled: id=%s, patient=%s, doctor=%s, slot=%s", appointment.ID, patient.ID, doctor.ID, slot.Format(entity.SlotLayout))
	return converter.AppointmentToResponse(appointment), nil
}

// CancelAppointment moves a scheduled appointment to cancelled and frees its
// exact slot for rebooking. Completed or already-cancelled appointments
// reject the transition.
func (u *schedulingUsecase) CancelAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if !appointment.IsScheduled() {
		return nil, ErrAppointmentNotScheduled
	}

	oldStatus := appointment.Status
	appointment.Cancel()

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment %s: %+v", appointmentID, err)
		return nil, err
	}

	if u.slots != nil {
		if err := u.slots.Release(ctx, appointment.DoctorID, appointment.Slot); err != nil {
			// Non-fatal: the claim expires on its own TTL.
			u.log.Warnf("Failed to release slot claim for appointment %s: %+v", appointmentID, err)
		}
	}

	if err := u.auditService.LogUpdate(ctx, actorFrom(ctx), entity.AuditActionAppointmentCancel, "appointment", appointment.ID, oldStatus, appointment.Status); err != nil {
		u.log.Warnf("Failed to audit appointment %s: %+v", appointment.ID, err)
	}

	u.log.Infof("Appointment cancelled: id=%s", appointmentID)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *schedulingUsecase) GetAppointment(ctx context.Context, appointmentID string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}
