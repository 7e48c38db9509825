package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/planwise/internal/dbx"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/admins"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/members"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Admins(db dbx.DBTX) admins.Repository
	Members(db dbx.DBTX) members.Repository
}
