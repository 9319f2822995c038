package usecase

import (
	"testing"

	"clinicdesk/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDoctor(t *testing.T) {
	env := newTestEnv(t)

	doctor, err := env.doctors.RegisterDoctor(env.ctx, &dto.RegisterDoctorRequest{
		Name:           "Dr. Budi Santoso",
		Specialization: "Cardiology",
		Fee:            dec("750.50"),
	})
	require.NoError(t, err)

	assert.Equal(t, "DOC-0001", doctor.ID)
	assert.True(t, doctor.Fee.Equal(dec("750.50")))
}

func TestRegisterDoctorNegativeFee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.doctors.RegisterDoctor(env.ctx, &dto.RegisterDoctorRequest{
		Name:           "Dr. Budi Santoso",
		Specialization: "Cardiology",
		Fee:            dec("-1"),
	})
	assert.ErrorIs(t, err, ErrNegativeFee)
}

func TestRegisterDoctorZeroFee(t *testing.T) {
	env := newTestEnv(t)

	doctor, err := env.doctors.RegisterDoctor(env.ctx, &dto.RegisterDoctorRequest{
		Name:           "Dr. Pro Bono",
		Specialization: "General Medicine",
		Fee:            dec("0"),
	})
	require.NoError(t, err)
	assert.True(t, doctor.Fee.IsZero())
}

func TestGetDoctorNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.doctors.GetDoctor(env.ctx, "DOC-9999")
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}
