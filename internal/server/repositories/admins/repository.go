// Package admins stores admin accounts keyed by email.
package admins

import (
	"context"

	"github.com/dmitrijs2005/planwise/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, admin *models.Admin) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	UpdateProfile(ctx context.Context, email string, upd models.AdminProfileUpdate) (*models.Admin, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	SetAvatar(ctx context.Context, email, key string) error
	Delete(ctx context.Context, email string) error
}
