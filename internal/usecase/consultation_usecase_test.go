package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordConsultationCompletesAppointment(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	consultation, err := env.consultations.RecordConsultation(env.ctx, &dto.RecordConsultationRequest{
		AppointmentID: appointmentID,
		Notes:         "mild fever, rest advised",
		Items: []dto.PrescriptionItemRequest{
			item("Paracetamol 500mg", 2, "12.50"),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "CON-0001", consultation.ID)
	assert.Len(t, consultation.Items, 1)
	assert.True(t, consultation.ItemsTotal.Equal(dec("25")))
	assert.Empty(t, consultation.RejectedItems)

	appointment, err := env.appointmentRepo.FindByID(env.ctx, appointmentID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, appointment.Status)
}

func TestRecordConsultationForcesCompletedFromCancelled(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	_, err := env.scheduling.CancelAppointment(env.ctx, appointmentID)
	require.NoError(t, err)

	// The visit happened anyway: recording wins over the cancellation.
	env.record(t, appointmentID)

	appointment, err := env.appointmentRepo.FindByID(env.ctx, appointmentID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, appointment.Status)
}

func TestRecordConsultationRejectsInvalidItemsIndividually(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	consultation, err := env.consultations.RecordConsultation(env.ctx, &dto.RecordConsultationRequest{
		AppointmentID: appointmentID,
		Items: []dto.PrescriptionItemRequest{
			item("Amoxicillin 250mg", 3, "8.00"),
			item("Zero Quantity Syrup", 0, "10.00"),
			item("Negative Price Drops", 1, "-5.00"),
			item("Vitamin C 1000mg", 1, "6.00"),
		},
	})
	require.NoError(t, err)

	require.Len(t, consultation.Items, 2)
	assert.Equal(t, "Amoxicillin 250mg", consultation.Items[0].Name)
	assert.Equal(t, "Vitamin C 1000mg", consultation.Items[1].Name)
	assert.True(t, consultation.ItemsTotal.Equal(dec("30")))
	assert.Equal(t, []string{"Zero Quantity Syrup", "Negative Price Drops"}, consultation.RejectedItems)
}

func TestRecordConsultationAppointmentNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.consultations.RecordConsultation(env.ctx, &dto.RecordConsultationRequest{
		AppointmentID: "APT-9999",
	})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
