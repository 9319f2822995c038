package memory

import (
	"context"
	"testing"
	"time"

	"clinicdesk/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRepositoryInsertionOrder(t *testing.T) {
	repo := NewPatientRepository()
	ctx := context.Background()

	for _, id := range []string{"PAT-0001", "PAT-0002", "PAT-0003"} {
		require.NoError(t, repo.Create(ctx, &entity.Patient{ID: id, Name: "patient " + id}))
	}

	patients, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, patients, 3)
	assert.Equal(t, "PAT-0001", patients[0].ID)
	assert.Equal(t, "PAT-0002", patients[1].ID)
	assert.Equal(t, "PAT-0003", patients[2].ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestPatientRepositoryFindByIDMissing(t *testing.T) {
	repo := NewPatientRepository()

	patient, err := repo.FindByID(context.Background(), "PAT-9999")
	require.NoError(t, err)
	assert.Nil(t, patient)
}

func TestPatientRepositoryReturnsCopies(t *testing.T) {
	repo := NewPatientRepository()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Patient{ID: "PAT-0001", Name: "Aisha"}))

	first, err := repo.FindByID(ctx, "PAT-0001")
	require.NoError(t, err)
	first.Name = "mutated"

	second, err := repo.FindByID(ctx, "PAT-0001")
	require.NoError(t, err)
	assert.Equal(t, "Aisha", second.Name)
}

func TestAppointmentRepositoryExistsScheduled(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()
	slot := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	appointment := &entity.Appointment{
		ID:        "APT-0001",
		PatientID: "PAT-0001",
		DoctorID:  "DOC-0001",
		Slot:      slot,
		Status:    entity.AppointmentStatusScheduled,
	}
	require.NoError(t, repo.Create(ctx, appointment))

	taken, err := repo.ExistsScheduled(ctx, "DOC-0001", slot)
	require.NoError(t, err)
	assert.True(t, taken)

	// Different slot, different doctor
	taken, err = repo.ExistsScheduled(ctx, "DOC-0001", slot.Add(30*time.Minute))
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.ExistsScheduled(ctx, "DOC-0002", slot)
	require.NoError(t, err)
	assert.False(t, taken)

	// Cancelled appointments release the slot
	appointment.Cancel()
	require.NoError(t, repo.Update(ctx, appointment))

	taken, err = repo.ExistsScheduled(ctx, "DOC-0001", slot)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestAppointmentRepositoryFindScheduled(t *testing.T) {
	repo := NewAppointmentRepository()
	ctx := context.Background()
	slot := time.Date(2030, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &entity.Appointment{ID: "APT-0001", DoctorID: "DOC-0001", Slot: slot, Status: entity.AppointmentStatusScheduled}))
	require.NoError(t, repo.Create(ctx, &entity.Appointment{ID: "APT-0002", DoctorID: "DOC-0001", Slot: slot.Add(time.Hour), Status: entity.AppointmentStatusCompleted}))

	scheduled, err := repo.FindScheduled(ctx)
	require.NoError(t, err)
	require.Len(t, scheduled, 1)
	assert.Equal(t, "APT-0001", scheduled[0].ID)
}

func TestInvoiceRepositoryOutstandingAndDuplicates(t *testing.T) {
	repo := NewInvoiceRepository()
	ctx := context.Background()

	open := &entity.Invoice{
		ID:              "INV-0001",
		ConsultationID:  "CON-0001",
		ConsultationFee: decimal.RequireFromString("500"),
		ItemsTotal:      decimal.RequireFromString("50"),
		TaxRate:         decimal.RequireFromString("0.12"),
	}
	closed := &entity.Invoice{
		ID:              "INV-0002",
		ConsultationID:  "CON-0002",
		ConsultationFee: decimal.RequireFromString("300"),
		ItemsTotal:      decimal.Zero,
		TaxRate:         decimal.Zero,
		Closed:          true,
	}
	require.NoError(t, repo.Create(ctx, open))
	require.NoError(t, repo.Create(ctx, closed))

	exists, err := repo.ExistsForConsultation(ctx, "CON-0001")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsForConsultation(ctx, "CON-9999")
	require.NoError(t, err)
	assert.False(t, exists)

	outstanding, err := repo.FindOutstanding(ctx)
	require.NoError(t, err)
	require.Len(t, outstanding, 1)
	assert.Equal(t, "INV-0001", outstanding[0].ID)

	open.Close()
	require.NoError(t, repo.Update(ctx, open))

	outstanding, err = repo.FindOutstanding(ctx)
	require.NoError(t, err)
	assert.Empty(t, outstanding)
}

func TestConsultationRepositoryCopiesItems(t *testing.T) {
	repo := NewConsultationRepository()
	ctx := context.Background()

	consultation := &entity.Consultation{
		ID:            "CON-0001",
		AppointmentID: "APT-0001",
		Items: []entity.PrescriptionItem{
			{Name: "Paracetamol 500mg", Quantity: 2, UnitPrice: decimal.RequireFromString("12.50")},
		},
	}
	require.NoError(t, repo.Create(ctx, consultation))

	// Mutating the caller's slice must not leak into the store
	consultation.Items[0].Name = "mutated"

	stored, err := repo.FindByID(ctx, "CON-0001")
	require.NoError(t, err)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, "Paracetamol 500mg", stored.Items[0].Name)
}
