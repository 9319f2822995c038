package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvoiceDerivedTotals(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID, item("Paracetamol 500mg", 2, "25.00"))

	invoice := env.invoice(t, consultationID, "0.12")

	assert.Equal(t, "INV-0001", invoice.ID)
	assert.True(t, invoice.ConsultationFee.Equal(dec("500")), "fee %s", invoice.ConsultationFee)
	assert.True(t, invoice.ItemsTotal.Equal(dec("50")), "items %s", invoice.ItemsTotal)
	assert.True(t, invoice.Subtotal.Equal(dec("550")), "subtotal %s", invoice.Subtotal)
	assert.True(t, invoice.Tax.Equal(dec("66")), "tax %s", invoice.Tax)
	assert.True(t, invoice.Total.Equal(dec("616")), "total %s", invoice.Total)
	assert.False(t, invoice.Closed)
}

func TestGenerateInvoiceZeroTaxRate(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "300")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID)

	invoice := env.invoice(t, consultationID, "0")

	assert.True(t, invoice.Tax.Equal(dec("0")))
	assert.True(t, invoice.Total.Equal(dec("300")))
}

func TestGenerateInvoiceDuplicate(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID)

	env.invoice(t, consultationID, "0.12")

	_, err := env.billing.GenerateInvoice(env.ctx, &dto.GenerateInvoiceRequest{
		ConsultationID: consultationID,
		TaxRate:        dec("0.12"),
	})
	assert.ErrorIs(t, err, ErrDuplicateInvoice)
}

func TestGenerateInvoiceInvalidTaxRate(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID)

	for _, rate := range []string{"-0.01", "1.01", "2"} {
		_, err := env.billing.GenerateInvoice(env.ctx, &dto.GenerateInvoiceRequest{
			ConsultationID: consultationID,
			TaxRate:        dec(rate),
		})
		assert.ErrorIs(t, err, ErrInvalidTaxRate, "rate %s", rate)
	}

	// Boundary rates are valid
	invoice := env.invoice(t, consultationID, "1")
	assert.True(t, invoice.Tax.Equal(invoice.Subtotal))
}

func TestGenerateInvoiceConsultationNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.billing.GenerateInvoice(env.ctx, &dto.GenerateInvoiceRequest{
		ConsultationID: "CON-9999",
		TaxRate:        dec("0.12"),
	})
	assert.ErrorIs(t, err, ErrConsultationNotFound)
}

func TestGenerateInvoiceSnapshotsFeeAtGeneration(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	consultationID := env.record(t, appointmentID)

	invoice := env.invoice(t, consultationID, "0.10")

	// Re-reading the invoice recomputes the same derived values from the
	// stored snapshot.
	stored, err := env.billing.GetInvoice(env.ctx, invoice.ID)
	require.NoError(t, err)
	assert.True(t, stored.ConsultationFee.Equal(dec("500")))
	assert.True(t, stored.Total.Equal(invoice.Total))
}
