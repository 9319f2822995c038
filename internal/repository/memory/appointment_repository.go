package memory

import (
	"context"
	"sync"
	"time"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type appointmentRepository struct {
	mu    sync.RWMutex
	items map[string]entity.Appointment
	order []string
}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{items: make(map[string]entity.Appointment)}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[appointment.ID]; !ok {
		r.order = append(r.order, appointment.ID)
	}
	r.items[appointment.ID] = *appointment
	return nil
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointment, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]entity.Appointment, 0, len(r.order))
	for _, id := range r.order {
		appointments = append(appointments, r.items[id])
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[appointment.ID]; !ok {
		r.order = append(r.order, appointment.ID)
	}
	r.items[appointment.ID] = *appointment
	return nil
}

func (r *appointmentRepository) ExistsScheduled(ctx context.Context, doctorID string, slot time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		appointment := r.items[id]
		if appointment.DoctorID == doctorID &&
			appointment.Status == entity.AppointmentStatusScheduled &&
			appointment.Slot.Equal(slot) {
			return true, nil
		}
	}
	return false, nil
}

func (r *appointmentRepository) FindScheduled(ctx context.Context) ([]entity.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var appointments []entity.Appointment
	for _, id := range r.order {
		appointment := r.items[id]
		if appointment.Status == entity.AppointmentStatusScheduled {
			appointments = append(appointments, appointment)
		}
	}
	return appointments, nil
}

func (r *appointmentRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.order)), nil
}
