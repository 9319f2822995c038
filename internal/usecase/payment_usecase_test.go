package usecase

import (
	"testing"
	"time"

	"clinicdesk/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoiceFor812 builds the 812.00 fixture: fee 700 + items 25 = 725, 12%
// tax 87, total 812.
func invoiceFor812(t *testing.T, env *testEnv) string {
	t.Helper()

	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "700")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID, item("Ibuprofen 400mg", 1, "25.00"))
	return env.invoice(t, consultationID, "0.12").ID
}

func TestRecordPaymentExactAmount(t *testing.T) {
	env := newTestEnv(t)
	invoiceID := invoiceFor812(t, env)

	paidAt := time.Date(2030, 3, 1, 11, 30, 0, 0, time.UTC)
	env.payments.(*paymentUsecase).now = func() time.Time { return paidAt }

	payment, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("812.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "PAY-0001", payment.ID)
	assert.NotEmpty(t, payment.Receipt)
	assert.Equal(t, paidAt, payment.PaidAt)

	invoice, err := env.billing.GetInvoice(env.ctx, invoiceID)
	require.NoError(t, err)
	assert.True(t, invoice.Closed)
}

func TestRecordPaymentWithinTolerance(t *testing.T) {
	env := newTestEnv(t)
	invoiceID := invoiceFor812(t, env)

	_, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("811.995"),
	})
	require.NoError(t, err)

	invoice, err := env.billing.GetInvoice(env.ctx, invoiceID)
	require.NoError(t, err)
	assert.True(t, invoice.Closed)
}

func TestRecordPaymentAmountMismatch(t *testing.T) {
	env := newTestEnv(t)
	invoiceID := invoiceFor812(t, env)

	_, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("800.00"),
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)

	// Rejected payment leaves nothing behind
	invoice, err := env.billing.GetInvoice(env.ctx, invoiceID)
	require.NoError(t, err)
	assert.False(t, invoice.Closed)

	payments, err := env.paymentRepo.FindAll(env.ctx)
	require.NoError(t, err)
	assert.Empty(t, payments)

	// Overpayment past the tolerance is rejected the same way
	_, err = env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("812.01"),
	})
	assert.ErrorIs(t, err, ErrAmountMismatch)
}

func TestRecordPaymentAlreadyPaid(t *testing.T) {
	env := newTestEnv(t)
	invoiceID := invoiceFor812(t, env)

	_, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("812.00"),
	})
	require.NoError(t, err)

	_, err = env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("812.00"),
	})
	assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)
}

func TestRecordPaymentInvoiceNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: "INV-9999",
		Amount:    dec("100.00"),
	})
	assert.ErrorIs(t, err, ErrInvoiceNotFound)
}

func TestRecordPaymentReceiptsAreUnique(t *testing.T) {
	env := newTestEnv(t)
	invoiceID := invoiceFor812(t, env)

	// Second invoice for a second patient journey
	patientID := env.registerPatient(t, "Chandra Wijaya")
	doctorID := env.registerDoctor(t, "Dr. Dewi Lestari", "700")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-02 09:00")
	consultationID := env.record(t, appointmentID, item("Ibuprofen 400mg", 1, "25.00"))
	otherInvoiceID := env.invoice(t, consultationID, "0.12").ID

	first, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: invoiceID,
		Amount:    dec("812.00"),
	})
	require.NoError(t, err)

	second, err := env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: otherInvoiceID,
		Amount:    dec("812.00"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, first.Receipt, second.Receipt)
}
