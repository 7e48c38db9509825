package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/planwise/internal/dbx"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/admins"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/members"
)

// MemoryRepositoryManager hands out the same in-memory repositories on every
// call, ignoring the DBTX argument. Used when the server runs with -d memory
// and in service tests.
type MemoryRepositoryManager struct {
	admins  *admins.MemoryRepository
	members *members.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		admins:  admins.NewMemoryRepository(),
		members: members.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) Admins(dbx.DBTX) admins.Repository {
	return m.admins
}

func (m *MemoryRepositoryManager) Members(dbx.DBTX) members.Repository {
	return m.members
}

// RunMigrations is a no-op; the in-memory store has no schema.
func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}
