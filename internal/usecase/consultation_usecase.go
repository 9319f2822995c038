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

var ErrConsultationNotFound = errors.New("consultation not found")

type ConsultationUsecase interface {
	RecordConsultation(ctx context.Context, req *dto.RecordConsultationRequest) (*dto.ConsultationResponse, error)
	GetConsultation(ctx context.Context, consultationID string) (*dto.ConsultationResponse, error)
}

type consultationUsecase struct {
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	ids              idgen.Generator
	slots            *service.SlotReservationService
	auditService     service.AuditService
}

func NewConsultationUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	ids idgen.Generator,
	slots *service.SlotReservationService,
	auditService service.AuditService,
) ConsultationUsecase {
	return &consultationUsecase{
		log:              log,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
		ids:              ids,
		slots:            slots,
		auditService:     auditService,
	}
}

// RecordConsultation captures the visit outcome for an appointment.
//
// Prescription lines with a non-positive quantity or a negative unit price
// are dropped one by one, never failing the whole consultation. The dropped
// names come back in the response so the front desk can re-enter them.
//
// Recording always forces the appointment to completed, whatever status it
// was in before. The front desk records consultations after the fact, so a
// consultation arriving for a cancelled appointment means the visit happened
// and the cancellation was wrong.
func (u *consultationUsecase) RecordConsultation(ctx context.Context, req *dto.RecordConsultationRequest) (*dto.ConsultationResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, req.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", req.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	items := make([]entity.PrescriptionItem, 0, len(req.Items))
	var rejected []string
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			u.log.Warnf("Rejected prescription item %q for appointment %s: quantity=%d, unit_price=%s", item.Name, appointment.ID, item.Quantity, item.UnitPrice)
			rejected = append(rejected, item.Name)
			continue
		}
		items = append(items, entity.PrescriptionItem{
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	consultation := &entity.Consultation{
		ID:            u.ids.Next(idgen.PrefixConsultation),
		AppointmentID: appointment.ID,
		Notes:         req.Notes,
		Items:         items,
	}

	if err := u.consultationRepo.Create(ctx, consultation); err != nil {
		u.log.Errorf("Failed to insert consultation: %+v", err)
		return nil, err
	}

	wasScheduled := appointment.IsScheduled()
	oldStatus := appointment.Status
	appointment.Complete()
	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Errorf("Failed to complete appointment %s: %+v", appointment.ID, err)
		return nil, err
	}

	if wasScheduled && u.slots != nil {
		if err := u.slots.Release(ctx, appointment.DoctorID, appointment.Slot); err != nil {
			u.log.Warnf("Failed to release slot claim for appointment %s: %+v", appointment.ID, err)
		}
	}
	if oldStatus != entity.AppointmentStatusCompleted {
		u.log.Infof("Appointment %s forced to completed (was %s)", appointment.ID, oldStatus)
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionConsultationRecord, "consultation", consultation.ID, consultation); err != nil {
		u.log.Warnf("Failed to audit consultation %s: %+v", consultation.ID, err)
	}

	u.log.Infof("Consultation recorded: id=%s, appointment=%s, items=%d, rejected=%d", consultation.ID, appointment.ID, len(items), len(rejected))
	return converter.ConsultationToResponse(consultation, rejected), nil
}

func (u *consultationUsecase) GetConsultation(ctx context.Context, consultationID string) (*dto.ConsultationResponse, error) {
	consultation, err := u.consultationRepo.FindByID(ctx, consultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", consultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	return converter.ConsultationToResponse(consultation, nil), nil
}
