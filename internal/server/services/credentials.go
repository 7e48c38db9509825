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

// CredentialService manages the password lifecycle of team members:
// first-time password creation, verification, and recovery through a
// security answer.
type CredentialService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      auth.Hasher
	tokens      *TokenIssuer
}

func NewCredentialService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.Hasher, tokens *TokenIssuer) *CredentialService {
	return &CredentialService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		tokens:      tokens,
	}
}

// normalizeAnswer is applied to security answers both when they are stored
// and when they are checked.
func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func (s *CredentialService) getMember(ctx context.Context, name string) (*models.TeamMember, error) {
	m, err := s.repomanager.Members(s.db).GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error looking up member: %w", err)
	}
	return m, nil
}

func (s *CredentialService) HasPassword(ctx context.Context, name string) (bool, error) {
	m, err := s.getMember(ctx, name)
	if err != nil {
		return false, err
	}
	return m.HasPassword(), nil
}

// CreatePassword sets the first password and the security answer of a member.
// It succeeds at most once per member; later calls get common.ErrorConflict
// and leave the stored hashes untouched.
func (s *CredentialService) CreatePassword(ctx context.Context, name, password, securityAnswer string) error {
	answer := normalizeAnswer(securityAnswer)
	if password == "" || answer == "" {
		return fmt.Errorf("%w: password and security answer are required", common.ErrorBadRequest)
	}

	m, err := s.getMember(ctx, name)
	if err != nil {
		return err
	}
	if m.HasPassword() {
		return common.ErrorConflict
	}

	passwordHash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}
	answerHash, err := s.hasher.Hash(answer)
	if err != nil {
		return fmt.Errorf("error hashing security answer: %w", err)
	}

	// the repository re-checks atomically, so a concurrent winner is not overwritten
	if err := s.repomanager.Members(s.db).SetInitialCredential(ctx, name, passwordHash, answerHash); err != nil {
		return fmt.Errorf("error storing credential: %w", err)
	}

	return nil
}

// VerifyPassword returns false for members without a password.
func (s *CredentialService) VerifyPassword(ctx context.Context, name, password string) (bool, error) {
	m, err := s.getMember(ctx, name)
	if err != nil {
		return false, err
	}
	if !m.HasPassword() {
		return false, nil
	}
	return s.hasher.Compare(m.PasswordHash, password)
}

func (s *CredentialService) VerifySecurityAnswer(ctx context.Context, name, answer string) (bool, error) {
	m, err := s.getMember(ctx, name)
	if err != nil {
		return false, err
	}
	if !m.HasSecurityAnswer() {
		return false, common.ErrNoAnswerSet
	}
	return s.hasher.Compare(m.SecurityAnswerHash, normalizeAnswer(answer))
}

// ResetPassword overwrites the member's password. Callers are expected to
// have passed VerifySecurityAnswer first.
func (s *CredentialService) ResetPassword(ctx context.Context, name, newPassword string) error {
	if name == "" || newPassword == "" {
		return fmt.Errorf("%w: name and new password are required", common.ErrorBadRequest)
	}

	if _, err := s.getMember(ctx, name); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.repomanager.Members(s.db).UpdatePassword(ctx, name, hash); err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	return nil
}

// MemberLogin checks the password and issues a member session token.
// Unknown members, members without a password and wrong passwords all
// yield common.ErrorUnauthorized.
func (s *CredentialService) MemberLogin(ctx context.Context, name, password string) (*models.TeamMember, string, error) {
	m, err := s.getMember(ctx, name)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", err
	}

	if !m.HasPassword() {
		return nil, "", common.ErrorUnauthorized
	}

	ok, err := s.hasher.Compare(m.PasswordHash, password)
	if err != nil {
		return nil, "", fmt.Errorf("error comparing password: %w", err)
	}
	if !ok {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := s.tokens.Issue(m.Name, m.ID, common.RoleMember)
	if err != nil {
		return nil, "", fmt.Errorf("error issuing token: %w", err)
	}

	return m, token, nil
}
