package memory

import (
	"context"
	"sync"
	"time"

	"clinicdesk/internal/domain/entity"
	domainRepo "clinicdesk/internal/domain/repository"
)

type auditLogRepository struct {
	mu     sync.RWMutex
	logs   []entity.AuditLog
	nextID int64
}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{nextID: 1}
}

func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.ID = r.nextID
	r.nextID++
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}
	r.logs = append(r.logs, *log)
	return nil
}

func (r *auditLogRepository) FindAll(ctx context.Context) ([]entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := make([]entity.AuditLog, len(r.logs))
	copy(logs, r.logs)
	return logs, nil
}

func (r *auditLogRepository) FindByID(ctx context.Context, id int64) (*entity.AuditLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, log := range r.logs {
		if log.ID == id {
			return &log, nil
		}
	}
	return nil, nil
}
