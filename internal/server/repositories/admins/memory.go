package admins

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu     sync.Mutex
	admins map[string]models.Admin
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{admins: make(map[string]models.Admin)}
}

func (r *MemoryRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[admin.Email]; ok {
		return nil, common.ErrorConflict
	}
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}
	admin.CreatedAt = time.Now().UTC()
	r.admins[admin.Email] = *admin

	out := *admin
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &a, nil
}

func (r *MemoryRepository) UpdateProfile(ctx context.Context, email string, upd models.AdminProfileUpdate) (*models.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	upd.Apply(&a)
	r.admins[email] = a
	return &a, nil
}

func (r *MemoryRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[email]
	if !ok {
		return common.ErrorNotFound
	}
	a.PasswordHash = passwordHash
	r.admins[email] = a
	return nil
}

func (r *MemoryRepository) SetAvatar(ctx context.Context, email, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.admins[email]
	if !ok {
		return common.ErrorNotFound
	}
	a.Avatar = key
	r.admins[email] = a
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.admins[email]; !ok {
		return common.ErrorNotFound
	}
	delete(r.admins, email)
	return nil
}
