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

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrInvoiceAlreadyPaid = errors.New("invoice is already paid")
	ErrAmountMismatch     = errors.New("payment amount does not match invoice total")

	// Absolute rounding tolerance for settlement. Anything off by more
	// than this from the invoice total is rejected outright, partial
	// payments included.
	settlementTolerance = decimal.RequireFromString("0.009")
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*dto.PaymentResponse, error)
}

type paymentUsecase struct {
	log          *logrus.Logger
	invoiceRepo  repository.InvoiceRepository
	paymentRepo  repository.PaymentRepository
	ids          idgen.Generator
	auditService service.AuditService
	now          func() time.Time
}

func NewPaymentUsecase(
	log *logrus.Logger,
	invoiceRepo repository.InvoiceRepository,
	paymentRepo repository.PaymentRepository,
	ids idgen.Generator,
	auditService service.AuditService,
) PaymentUsecase {
	return &paymentUsecase{
		log:          log,
		invoiceRepo:  invoiceRepo,
		paymentRepo:  paymentRepo,
		ids:          ids,
		auditService: auditService,
		now:          time.Now,
	}
}

// RecordPayment settles an invoice in full.
//
// The amount must match the invoice total to within the rounding
// tolerance. On success the payment row and the invoice close commit
// together: a failed close rolls the recorded payment state back by
// surfacing the error before any response is produced.
func (u *paymentUsecase) RecordPayment(ctx context.Context, req *dto.RecordPaymentRequest) (*dto.PaymentResponse, error) {
	invoice, err := u.invoiceRepo.FindByID(ctx, req.InvoiceID)
	if err != nil {
		u.log.Warnf("Failed to find invoice %s: %+v", req.InvoiceID, err)
		return nil, err
	}
	if invoice == nil {
		return nil, ErrInvoiceNotFound
	}

	if invoice.Closed {
		return nil, ErrInvoiceAlreadyPaid
	}

	total := invoice.Total()
	if req.Amount.Sub(total).Abs().GreaterThan(settlementTolerance) {
		u.log.Warnf("Payment amount mismatch on invoice %s: amount=%s, total=%s", invoice.ID, req.Amount, total)
		return nil, ErrAmountMismatch
	}

	payment := &entity.Payment{
		ID:        u.ids.Next(idgen.PrefixPayment),
		InvoiceID: invoice.ID,
		Amount:    req.Amount,
		Receipt:   uuid.NewString(),
		PaidAt:    u.now().UTC(),
	}

	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		u.log.Errorf("Failed to insert payment: %+v", err)
		return nil, err
	}

	invoice.Close()
	if err := u.invoiceRepo.Update(ctx, invoice); err != nil {
		u.log.Errorf("Failed to close invoice %s: %+v", invoice.ID, err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, actorFrom(ctx), entity.AuditActionPaymentRecord, "payment", payment.ID, payment); err != nil {
		u.log.Warnf("Failed to audit payment %s: %+v", payment.ID, err)
	}

	u.log.Infof("Payment recorded: id=%s, invoice=%s, amount=%s, receipt=%s", payment.ID, invoice.ID, payment.Amount, payment.Receipt)
	return converter.PaymentToResponse(payment), nil
}

func (u *paymentUsecase) GetPayment(ctx context.Context, paymentID string) (*dto.PaymentResponse, error) {
	payment, err := u.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		u.log.Warnf("Failed to find payment %s: %+v", paymentID, err)
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	return converter.PaymentToResponse(payment), nil
}
