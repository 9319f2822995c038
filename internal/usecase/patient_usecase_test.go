package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterPatient(t *testing.T) {
	env := newTestEnv(t)

	patient, err := env.patients.RegisterPatient(env.ctx, &dto.RegisterPatientRequest{
		Name:        "Aisha Rahman",
		Phone:       "081234567890",
		Email:       "aisha@example.com",
		DateOfBirth: "1990-06-15",
	})
	require.NoError(t, err)

	assert.Equal(t, "PAT-0001", patient.ID)
	assert.Equal(t, "Aisha Rahman", patient.Name)

	second, err := env.patients.RegisterPatient(env.ctx, &dto.RegisterPatientRequest{
		Name:        "Chandra Wijaya",
		DateOfBirth: "1985-01-20",
	})
	require.NoError(t, err)
	assert.Equal(t, "PAT-0002", second.ID)
}

func TestRegisterPatientInvalidDateOfBirth(t *testing.T) {
	env := newTestEnv(t)

	for _, dob := range []string{"15-06-1990", "1990/06/15", "not-a-date"} {
		_, err := env.patients.RegisterPatient(env.ctx, &dto.RegisterPatientRequest{
			Name:        "Aisha Rahman",
			DateOfBirth: dob,
		})
		assert.ErrorIs(t, err, ErrInvalidDateOfBirth, "dob %s", dob)
	}
}

func TestGetPatientNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.patients.GetPatient(env.ctx, "PAT-9999")
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestListPatientsInsertionOrder(t *testing.T) {
	env := newTestEnv(t)
	env.registerPatient(t, "Aisha Rahman")
	env.registerPatient(t, "Chandra Wijaya")
	env.registerPatient(t, "Budi Hartono")

	list, err := env.patients.ListPatients(env.ctx)
	require.NoError(t, err)
	require.Equal(t, 3, list.Total)
	assert.Equal(t, "Aisha Rahman", list.Patients[0].Name)
	assert.Equal(t, "Chandra Wijaya", list.Patients[1].Name)
	assert.Equal(t, "Budi Hartono", list.Patients[2].Name)
}
