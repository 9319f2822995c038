package usecase

import (
	"context"
	"io"
	"testing"

	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/repository"
	"clinicdesk/internal/repository/memory"
	"clinicdesk/internal/service"
	"clinicdesk/pkg/idgen"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testEnv wires every usecase against the in-memory repositories, a fresh
// id sequence and no Redis.
type testEnv struct {
	ctx context.Context

	patientRepo      repository.PatientRepository
	doctorRepo       repository.DoctorRepository
	appointmentRepo  repository.AppointmentRepository
	consultationRepo repository.ConsultationRepository
	invoiceRepo      repository.InvoiceRepository
	paymentRepo      repository.PaymentRepository
	auditRepo        repository.AuditLogRepository

	patients      PatientUsecase
	doctors       DoctorUsecase
	scheduling    SchedulingUsecase
	consultations ConsultationUsecase
	billing       BillingUsecase
	payments      PaymentUsecase
	reports       ReportUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	env := &testEnv{
		ctx:              context.Background(),
		patientRepo:      memory.NewPatientRepository(),
		doctorRepo:       memory.NewDoctorRepository(),
		appointmentRepo:  memory.NewAppointmentRepository(),
		consultationRepo: memory.NewConsultationRepository(),
		invoiceRepo:      memory.NewInvoiceRepository(),
		paymentRepo:      memory.NewPaymentRepository(),
		auditRepo:        memory.NewAuditLogRepository(),
	}

	ids := idgen.NewSequence()
	auditService := service.NewAuditService(log, env.auditRepo)

	env.patients = NewPatientUsecase(log, env.patientRepo, ids, auditService)
	env.doctors = NewDoctorUsecase(log, env.doctorRepo, ids, auditService)
	env.scheduling = NewSchedulingUsecase(log, env.patientRepo, env.doctorRepo, env.appointmentRepo, ids, nil, auditService)
	env.consultations = NewConsultationUsecase(log, env.appointmentRepo, env.consultationRepo, ids, nil, auditService)
	env.billing = NewBillingUsecase(log, env.consultationRepo, env.appointmentRepo, env.doctorRepo, env.invoiceRepo, ids, auditService)
	env.payments = NewPaymentUsecase(log, env.invoiceRepo, env.paymentRepo, ids, auditService)
	env.reports = NewReportUsecase(log, env.patientRepo, env.doctorRepo, env.appointmentRepo, env.consultationRepo, env.invoiceRepo)

	return env
}

func (e *testEnv) registerPatient(t *testing.T, name string) string {
	t.Helper()

	patient, err := e.patients.RegisterPatient(e.ctx, &dto.RegisterPatientRequest{
		Name:        name,
		DateOfBirth: "1990-06-15",
	})
	require.NoError(t, err)
	return patient.ID
}

func (e *testEnv) registerDoctor(t *testing.T, name, fee string) string {
	t.Helper()

	doctor, err := e.doctors.RegisterDoctor(e.ctx, &dto.RegisterDoctorRequest{
		Name:           name,
		Specialization: "General Medicine",
		Fee:            decimal.RequireFromString(fee),
	})
	require.NoError(t, err)
	return doctor.ID
}

func (e *testEnv) schedule(t *testing.T, patientID, doctorID, slot string) string {
	t.Helper()

	appointment, err := e.scheduling.ScheduleAppointment(e.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Slot:      slot,
	})
	require.NoError(t, err)
	return appointment.ID
}

func (e *testEnv) record(t *testing.T, appointmentID string, items ...dto.PrescriptionItemRequest) string {
	t.Helper()

	consultation, err := e.consultations.RecordConsultation(e.ctx, &dto.RecordConsultationRequest{
		AppointmentID: appointmentID,
		Notes:         "follow-up in two weeks",
		Items:         items,
	})
	require.NoError(t, err)
	return consultation.ID
}

func (e *testEnv) invoice(t *testing.T, consultationID, taxRate string) *dto.InvoiceResponse {
	t.Helper()

	invoice, err := e.billing.GenerateInvoice(e.ctx, &dto.GenerateInvoiceRequest{
		ConsultationID: consultationID,
		TaxRate:        decimal.RequireFromString(taxRate),
	})
	require.NoError(t, err)
	return invoice
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func item(name string, quantity int, unitPrice string) dto.PrescriptionItemRequest {
	return dto.PrescriptionItemRequest{
		Name:      name,
		Quantity:  quantity,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}
