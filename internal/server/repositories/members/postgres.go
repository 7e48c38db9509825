package members

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/dbx"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectMember = `SELECT id, name, email, role, password_hash, security_answer_hash, created_at
		 FROM team_members`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMember(row rowScanner) (*models.TeamMember, error) {
	var (
		m          models.TeamMember
		pwd, answr sql.NullString
	)
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Role, &pwd, &answr, &m.CreatedAt); err != nil {
		return nil, err
	}
	m.PasswordHash = pwd.String
	m.SecurityAnswerHash = answr.String
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, member *models.TeamMember) (*models.TeamMember, error) {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO team_members (id, name, email, role)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		member.ID, member.Name, member.Email, member.Role).Scan(&member.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return member, nil
}

func (r *PostgresRepository) GetByName(ctx context.Context, name string) (*models.TeamMember, error) {
	m, err := scanMember(r.db.QueryRowContext(ctx, selectMember+`
		 WHERE name = $1
		 `, name))

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.TeamMember, error) {
	rows, err := r.db.QueryContext(ctx, selectMember+`
		 ORDER BY name
		 `)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.TeamMember, 0)
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM team_members WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) SetInitialCredential(ctx context.Context, name, passwordHash, answerHash string) error {
	query :=
		`UPDATE team_members SET password_hash = $2, security_answer_hash = $3
		 WHERE name = $1 AND password_hash IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, name, passwordHash, answerHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	ok, err := dbx.AffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if ok {
		return nil
	}

	// nothing updated: either the member is gone or someone set a password first
	var exists bool
	err = r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM team_members WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !exists {
		return common.ErrorNotFound
	}
	return common.ErrorConflict
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, name, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE team_members SET password_hash = $2 WHERE name = $1`, name, passwordHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	ok, err := dbx.AffectedOne(res)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if !ok {
		return common.ErrorNotFound
	}
	return nil
}
