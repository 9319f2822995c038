package usecase

import (
	"context"

	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"
	"clinicdesk/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type ReportUsecase interface {
	ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	OutstandingDues(ctx context.Context) (*dto.OutstandingDuesResponse, error)
}

type reportUsecase struct {
	log              *logrus.Logger
	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	invoiceRepo      repository.InvoiceRepository
}

func NewReportUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	appointmentRepo repository.AppointmentRepository,
	consultationRepo repository.ConsultationRepository,
	invoiceRepo repository.InvoiceRepository,
) ReportUsecase {
	return &reportUsecase{
		log:              log,
		patientRepo:      patientRepo,
		doctorRepo:       doctorRepo,
		appointmentRepo:  appointmentRepo,
		consultationRepo: consultationRepo,
		invoiceRepo:      invoiceRepo,
	}
}

// ListAppointments returns every appointment with patient and doctor names
// resolved, in creation order.
func (u *reportUsecase) ListAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	patientNames, err := u.patientNames(ctx)
	if err != nil {
		return nil, err
	}
	doctorNames, err := u.doctorNames(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.AppointmentListItem, len(appointments))
	for i, appointment := range appointments {
		items[i] = dto.AppointmentListItem{
			ID:          appointment.ID,
			PatientName: patientNames[appointment.PatientID],
			DoctorName:  doctorNames[appointment.DoctorID],
			Slot:        appointment.Slot.Format(entity.SlotLayout),
			Status:      string(appointment.Status),
		}
	}

	return &dto.AppointmentListResponse{
		Appointments: items,
		Total:        len(items),
	}, nil
}

// OutstandingDues lists open invoices with patient, doctor and total
// resolved, in invoice creation order. A paid invoice drops out of the
// report the moment its payment is recorded.
func (u *reportUsecase) OutstandingDues(ctx context.Context) (*dto.OutstandingDuesResponse, error) {
	invoices, err := u.invoiceRepo.FindOutstanding(ctx)
	if err != nil {
		u.log.Warnf("Failed to list outstanding invoices: %+v", err)
		return nil, err
	}

	patientNames, err := u.patientNames(ctx)
	if err != nil {
		return nil, err
	}
	doctorNames, err := u.doctorNames(ctx)
	if err != nil {
		return nil, err
	}

	dues := make([]dto.OutstandingDueItem, 0, len(invoices))
	for _, invoice := range invoices {
		consultation, err := u.consultationRepo.FindByID(ctx, invoice.ConsultationID)
		if err != nil {
			u.log.Warnf("Failed to find consultation %s: %+v", invoice.ConsultationID, err)
			return nil, err
		}
		if consultation == nil {
			u.log.Warnf("Invoice %s references missing consultation %s, skipping", invoice.ID, invoice.ConsultationID)
			continue
		}

		appointment, err := u.appointmentRepo.FindByID(ctx, consultation.AppointmentID)
		if err != nil {
			u.log.Warnf("Failed to find appointment %s: %+v", consultation.AppointmentID, err)
			return nil, err
		}
		if appointment == nil {
			u.log.Warnf("Consultation %s references missing appointment %s, skipping", consultation.ID, consultation.AppointmentID)
			continue
		}

		dues = append(dues, dto.OutstandingDueItem{
			InvoiceID:   invoice.ID,
			PatientName: patientNames[appointment.PatientID],
			DoctorName:  doctorNames[appointment.DoctorID],
			Total:       invoice.Total(),
		})
	}

	return &dto.OutstandingDuesResponse{
		Dues:  dues,
		Total: len(dues),
	}, nil
}

func (u *reportUsecase) patientNames(ctx context.Context) (map[string]string, error) {
	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	names := make(map[string]string, len(patients))
	for _, patient := range patients {
		names[patient.ID] = patient.Name
	}
	return names, nil
}

func (u *reportUsecase) doctorNames(ctx context.Context) (map[string]string, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	names := make(map[string]string, len(doctors))
	for _, doctor := range doctors {
		names[doctor.ID] = doctor.Name
	}
	return names, nil
}
