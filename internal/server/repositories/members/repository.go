// Package members stores team member identities and their credentials.
package members

import (
	"context"

	"github.com/dmitrijs2005/planwise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error)
	GetByName(ctx context.Context, name string) (*models.TeamMember, error)
	List(ctx context.Context) ([]*models.TeamMember, error)
	Delete(ctx context.Context, name string) error

	// SetInitialCredential stores both hashes only if the member has no
	// password yet. It returns common.ErrorConflict when one is already set
	// and common.ErrorNotFound when the member does not exist.
	SetInitialCredential(ctx context.Context, name, passwordHash, answerHash string) error

	// UpdatePassword overwrites the password hash unconditionally.
	UpdatePassword(ctx context.Context, name, passwordHash string) error
}
