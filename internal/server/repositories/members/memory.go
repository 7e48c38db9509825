package members

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps members in a map guarded by a mutex. Returned
// values are copies, so callers cannot mutate stored state.
type MemoryRepository struct {
	mu      sync.Mutex
	members map[string]models.TeamMember
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{members: make(map[string]models.TeamMember)}
}

func (r *MemoryRepository) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[member.Name]; ok {
		return nil, common.ErrorConflict
	}
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	member.CreatedAt = time.Now().UTC()
	r.members[member.Name] = *member

	out := *member
	return &out, nil
}

func (r *MemoryRepository) GetByName(ctx context.Context, name string) (*models.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[name]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &m, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		result = append(result, &m)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.members[name]; !ok {
		return common.ErrorNotFound
	}
	delete(r.members, name)
	return nil
}

func (r *MemoryRepository) SetInitialCredential(ctx context.Context, name, passwordHash, answerHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[name]
	if !ok {
		return common.ErrorNotFound
	}
	if m.HasPassword() {
		return common.ErrorConflict
	}
	m.PasswordHash = passwordHash
	m.SecurityAnswerHash = answerHash
	r.members[name] = m
	return nil
}

func (r *MemoryRepository) UpdatePassword(ctx context.Context, name, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.members[name]
	if !ok {
		return common.ErrorNotFound
	}
	m.PasswordHash = passwordHash
	r.members[name] = m
	return nil
}
