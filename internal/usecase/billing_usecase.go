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

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrInvoiceNotFound  = errors.New("invoice not found")
	ErrDuplicateInvoice = errors.New("consultation already has an invoice")
	ErrInvalidTaxRate   = errors.New("tax rate must be between 0 and 1")
)

type BillingUsecase interface {
	GenerateInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error)
}

type billingUsecase struct {
	log              *logrus.Logger
	consultationRepo repository.ConsultationRepository
	appointmentRepo  repository.AppointmentRepository
	doctorRepo       repository.DoctorRepository
	invoiceRepo      repository.InvoiceRepository
	ids              idgen.Generator
	auditService     service.AuditService
}

func NewBillingUsecase(
	log *logrus.Logger,
	consultationRepo repository.ConsultationRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorRepository,
	invoiceRepo repository.InvoiceRepository,
	ids idgen.Generator,
	auditService service.AuditService,
) BillingUsecase {
	return &billingUsecase{
		log:              log,
		consultationRepo: consultationRepo,
		appointmentRepo:  appointmentRepo,
		doctorRepo:       doctorRepo,
		invoiceRepo:      invoiceRepo,
		ids:              ids,
		auditService:     auditService,
	}
}

// GenerateInvoice creates the single invoice for a consultation.
//
// The invoice stores a snapshot: the doctor's fee and the prescription
// items total at generation time. Later fee changes never touch an issued
// invoice. Subtotal, tax and total are derived from the snapshot, never
// stored:
//
//	subtotal = fee + items_total
//	tax      = subtotal * tax_rate
//	total    = subtotal + tax
func (u *billingUsecase) GenerateInvoice(ctx context.Context, req *dto.GenerateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if req.TaxRate.IsNegative() || req.TaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrInvalidTaxRate
	}

	consultation, err := u.consultationRepo.FindByID(ctx, req.ConsultationID)
	if err != nil {
		u.log.Warnf("Failed to find consultation %s: %+v", req.ConsultationID, err)
		return nil, err
	}
	if consultation == nil {
		return nil, ErrConsultationNotFound
	}

	exists, err := u.invoiceRepo.ExistsForConsultation(ctx, consultation.ID)
	if err != nil {
		u.log.Warnf("Failed duplicate invoice check for consultation %s: %+v", consultation.ID, err)
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateInvoice
	}

	// Resolve the fee through consultation -> appointment -> doctor.
	appointment, err := u.appointmentRepo.FindByID(ctx, consultation.AppointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", consultation.AppointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	doctor, err := u.doctorRepo.FindByID(ctx, appointment.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	invoice := &entity.Invoice{
		ID:              u.ids.Next(idgen.PrefixInvoice),
		ConsultationID:  consultation.ID,
		ConsultationFee: doctor.Fee,
		ItemsTotal:      consultation.ItemsTotal(),
		TaxRate:         req.TaxRate,
	}

	if err := u.invoiceRepo.Create(ctx, invoice); err != nil {
		u.log.Errorf("Failed to insert invoice: %+v", err)
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateInvoice
		}
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionInvoiceGenerate, "invoice", invoice.ID, invoice); err != nil {
		u.log.Warnf("Failed to audit invoice %s: %+v", invoice.ID, err)
	}

	u.log.Infof("Invoice generated: id=%s, consultation=%s, total=%s", invoice.ID, consultation.ID, invoice.Total())
	return converter.InvoiceToResponse(invoice), nil
}

func (u *billingUsecase) GetInvoice(ctx context.Context, invoiceID string) (*dto.InvoiceResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, invoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice %s: %+v", invoiceID, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	return converter.InvoiceToResponse(invoice), nil
}
