package memory

import (
	"context"
	"sync"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"

	"github.com/google/uuid"
)

type userRepository struct {
	mu    sync.RWMutex
	items map[uuid.UUID]entity.User
	order []uuid.UUID
}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{items: make(map[uuid.UUID]entity.User)}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if _, ok := r.items[user.ID]; !ok {
		r.order = append(r.order, user.ID)
	}
	r.items[user.ID] = *user
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.order {
		user := r.items[id]
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}
