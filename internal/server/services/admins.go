package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/repomanager"
)

// AdminService manages admin accounts: signup, login, profile and password
// changes, deletion and avatar storage.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	tokens      *TokenIssuer
	avatars     AvatarStorage
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, tokens *TokenIssuer, avatars AvatarStorage) *AdminService {
	return &AdminService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
		avatars:     avatars,
	}
}

func (s *AdminService) Signup(ctx context.Context, profile models.Admin, password string) (*models.Admin, error) {
	if profile.Email == "" || profile.Name == "" || password == "" {
		return nil, fmt.Errorf("%w: email, name and password are required", common.ErrorBadRequest)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	admin := &models.Admin{
		Email:        profile.Email,
		Name:         profile.Name,
		Company:      profile.Company,
		Position:     profile.Position,
		PasswordHash: hash,
	}

	admin, err = s.repomanager.Admins(s.db).Create(ctx, admin)
	if err != nil {
		return nil, fmt.Errorf("error creating admin: %w", err)
	}

	return admin, nil
}

// Login issues an admin session token. Unknown emails and wrong passwords
// both yield common.ErrorUnauthorized.
func (s *AdminService) Login(ctx context.Context, email, password string) (*models.Admin, string, error) {
	admin, err := s.repomanager.Admins(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", fmt.Errorf("error looking up admin: %w", err)
	}

	ok, err := s.hasher.Compare(admin.PasswordHash, password)
	if err != nil {
		return nil, "", fmt.Errorf("error comparing password: %w", err)
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(admin.Email, admin.ID, common.RoleAdmin)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return admin, token, nil
}

// Get returns the admin profile and, when an avatar is stored, a presigned
// URL to download it.
func (s *AdminService) Get(ctx context.Context, email string) (*models.Admin, string, error) {
	admin, err := s.repomanager.Admins(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error looking up admin: %w", err)
	}

	url, err := s.avatarURL(ctx, admin)
	if err != nil {
		return nil, "", err
	}

	return admin, url, nil
}

// IdentityID returns the row ID of the admin stored under email.
func (s *AdminService) IdentityID(ctx context.Context, email string) (string, error) {
	admin, err := s.repomanager.Admins(s.db).GetByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error looking up admin: %w", err)
	}
	return admin.ID, nil
}

// avatarURL presigns a download only for keys inside the admin's own folder.
func (s *AdminService) avatarURL(ctx context.Context, admin *models.Admin) (string, error) {
	if s.avatars == nil || !OwnsAvatarKey(admin.ID, admin.Avatar) {
		return "", nil
	}
	url, err := s.avatars.PresignGet(ctx, admin.Avatar)
	if err != nil {
		return "", fmt.Errorf("error presigning avatar url: %w", err)
	}
	return url, nil
}

// Update changes profile fields only; absent fields are kept.
func (s *AdminService) Update(ctx context.Context, email string, upd models.AdminProfileUpdate) (*models.Admin, string, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, "", fmt.Errorf("%w: name cannot be empty", common.ErrorBadRequest)
	}

	repo := s.repomanager.Admins(s.db)

	var (
		admin *models.Admin
		err   error
	)
	if upd.Empty() {
		admin, err = repo.GetByEmail(ctx, email)
	} else {
		admin, err = repo.UpdateProfile(ctx, email, upd)
	}
	if err != nil {
		return nil, "", fmt.Errorf("error updating admin: %w", err)
	}

	url, err := s.avatarURL(ctx, admin)
	if err != nil {
		return nil, "", err
	}

	return admin, url, nil
}

func (s *AdminService) ChangePassword(ctx context.Context, email, currentPassword, newPassword string) error {
	if newPassword == "" {
		return fmt.Errorf("%w: new password is required", common.ErrorBadRequest)
	}

	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error looking up admin: %w", err)
	}

	ok, err := s.hasher.Compare(admin.PasswordHash, currentPassword)
	if err != nil {
		return fmt.Errorf("error comparing password: %w", err)
	}
	if !ok {
		return common.ErrorUnauthorized
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := repo.UpdatePassword(ctx, email, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

func (s *AdminService) Delete(ctx context.Context, email string) error {
	if err := s.repomanager.Admins(s.db).Delete(ctx, email); err != nil {
		return fmt.Errorf("error deleting admin: %w", err)
	}
	return nil
}

// AvatarUploadURL reserves a new object key for the admin's avatar, records
// it on the profile and returns a presigned PUT URL for it.
func (s *AdminService) AvatarUploadURL(ctx context.Context, email, contentType string) (string, string, error) {
	if s.avatars == nil {
		return "", "", fmt.Errorf("%w: avatar storage is not configured", common.ErrorInternal)
	}

	repo := s.repomanager.Admins(s.db)

	admin, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", fmt.Errorf("error looking up admin: %w", err)
	}

	key := NewAvatarKey(admin.ID)

	url, err := s.avatars.PresignPut(ctx, key, contentType)
	if err != nil {
		return "", "", fmt.Errorf("error presigning upload: %w", err)
	}

	if err := repo.SetAvatar(ctx, email, key); err != nil {
		return "", "", fmt.Errorf("error recording avatar: %w", err)
	}

	return url, key, nil
}
