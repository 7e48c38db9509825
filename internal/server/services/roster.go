package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/repomanager"
)

// RosterService creates and removes the team member identities that
// CredentialService operates on.
type RosterService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewRosterService(db *sql.DB, m repomanager.RepositoryManager) *RosterService {
	return &RosterService{db: db, repomanager: m}
}

// AddMember creates a member without a credential.
func (s *RosterService) AddMember(ctx context.Context, name, email, role string) (*models.TeamMember, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: member name is required", common.ErrorBadRequest)
	}

	m, err := s.repomanager.Members(s.db).Create(ctx, &models.TeamMember{Name: name, Email: email, Role: role})
	if err != nil {
		return nil, fmt.Errorf("error creating member: %w", err)
	}
	return m, nil
}

func (s *RosterService) GetMember(ctx context.Context, name string) (*models.TeamMember, error) {
	m, err := s.repomanager.Members(s.db).GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error looking up member: %w", err)
	}
	return m, nil
}

// IdentityID returns the row ID of the member stored under name.
func (s *RosterService) IdentityID(ctx context.Context, name string) (string, error) {
	m, err := s.GetMember(ctx, name)
	if err != nil {
		return "", err
	}
	return m.ID, nil
}

// ListMembers returns all members ordered by name.
func (s *RosterService) ListMembers(ctx context.Context) ([]*models.TeamMember, error) {
	list, err := s.repomanager.Members(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing members: %w", err)
	}
	return list, nil
}

func (s *RosterService) RemoveMember(ctx context.Context, name string) error {
	if err := s.repomanager.Members(s.db).Delete(ctx, name); err != nil {
		return fmt.Errorf("error deleting member: %w", err)
	}
	return nil
}
