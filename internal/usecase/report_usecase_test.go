package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAppointmentsResolvesNamesInOrder(t *testing.T) {
	env := newTestEnv(t)
	firstPatient := env.registerPatient(t, "Aisha Rahman")
	secondPatient := env.registerPatient(t, "Chandra Wijaya")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	env.schedule(t, firstPatient, doctorID, "2030-03-01 10:00")
	env.schedule(t, secondPatient, doctorID, "2030-03-01 09:00")

	report, err := env.reports.ListAppointments(env.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)

	// Creation order, not slot order
	assert.Equal(t, "Aisha Rahman", report.Appointments[0].PatientName)
	assert.Equal(t, "2030-03-01 10:00", report.Appointments[0].Slot)
	assert.Equal(t, "Chandra Wijaya", report.Appointments[1].PatientName)
	assert.Equal(t, "Dr. Budi Santoso", report.Appointments[1].DoctorName)
}

func TestOutstandingDues(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	otherPatientID := env.registerPatient(t, "Chandra Wijaya")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	firstAppointment := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
	secondAppointment := env.schedule(t, otherPatientID, doctorID, "2030-03-01 11:00")

	firstConsultation := env.record(t, firstAppointment, item("Paracetamol 500mg", 2, "25.00"))
	secondConsultation := env.record(t, secondAppointment)

	firstInvoice := env.invoice(t, firstConsultation, "0.12")
	secondInvoice := env.invoice(t, secondConsultation, "0")

	report, err := env.reports.OutstandingDues(env.ctx)
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)

	assert.Equal(t, firstInvoice.ID, report.Dues[0].InvoiceID)
	assert.Equal(t, "Aisha Rahman", report.Dues[0].PatientName)
	assert.Equal(t, "Dr. Budi Santoso", report.Dues[0].DoctorName)
	assert.True(t, report.Dues[0].Total.Equal(dec("616")))
	assert.True(t, report.Dues[1].Total.Equal(dec("500")))

	// Paying the first invoice removes it from the report
	_, err = env.payments.RecordPayment(env.ctx, &dto.RecordPaymentRequest{
		InvoiceID: firstInvoice.ID,
		Amount:    dec("616.00"),
	})
	require.NoError(t, err)

	report, err = env.reports.OutstandingDues(env.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, report.Total)
	assert.Equal(t, secondInvoice.ID, report.Dues[0].InvoiceID)
}

func TestOutstandingDuesEmpty(t *testing.T) {
	env := newTestEnv(t)

	report, err := env.reports.OutstandingDues(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, report.Total)
	assert.Empty(t, report.Dues)
}
