package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"
	"clinicdesk/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleAppointment(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	appointment, err := env.scheduling.ScheduleAppointment(env.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Slot:      "2030-03-01 10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "APT-0001", appointment.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), appointment.Status)
	assert.Equal(t, "2030-03-01 10:00", appointment.Slot)
}

func TestScheduleAppointmentSlotConflict(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	otherPatientID := env.registerPatient(t, "Chandra Wijaya")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")
	otherDoctorID := env.registerDoctor(t, "Dr. Dewi Lestari", "450")

	env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	// Same doctor, same slot, even for another patient
	_, err := env.scheduling.ScheduleAppointment(env.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: otherPatientID,
		DoctorID:  doctorID,
		Slot:      "2030-03-01 10:00",
	})
	assert.ErrorIs(t, err, ErrSlotConflict)

	// Adjacent slot for the same doctor is fine
	env.schedule(t, otherPatientID, doctorID, "2030-03-01 10:30")

	// Same slot with a different doctor is fine
	env.schedule(t, otherPatientID, otherDoctorID, "2030-03-01 10:00")
}

func TestScheduleAppointmentValidation(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	_, err := env.scheduling.ScheduleAppointment(env.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  doctorID,
		Slot:      "01/03/2030 10am",
	})
	assert.ErrorIs(t, err, ErrInvalidSlotFormat)

	_, err = env.scheduling.ScheduleAppointment(env.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: "PAT-9999",
		DoctorID:  doctorID,
		Slot:      "2030-03-01 10:00",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = env.scheduling.ScheduleAppointment(env.ctx, &dto.ScheduleAppointmentRequest{
		PatientID: patientID,
		DoctorID:  "DOC-9999",
		Slot:      "2030-03-01 10:00",
	})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestCancelAppointmentFreesSlot(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	cancelled, err := env.scheduling.CancelAppointment(env.ctx, appointmentID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), cancelled.Status)

	// The exact slot is bookable again
	env.schedule(t, patientID, doctorID, "2030-03-01 10:00")
}

func TestCancelAppointmentRejectsNonScheduled(t *testing.T) {
	env := newTestEnv(t)
	patientID := env.registerPatient(t, "Aisha Rahman")
	doctorID := env.registerDoctor(t, "Dr. Budi Santoso", "500")

	appointmentID := env.schedule(t, patientID, doctorID, "2030-03-01 10:00")

	_, err := env.scheduling.CancelAppointment(env.ctx, appointmentID)
	require.NoError(t, err)

	_, err = env.scheduling.CancelAppointment(env.ctx, appointmentID)
	assert.ErrorIs(t, err, ErrAppointmentNotScheduled)

	_, err = env.scheduling.CancelAppointment(env.ctx, "APT-9999")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
