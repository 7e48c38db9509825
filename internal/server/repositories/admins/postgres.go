package admins

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

func (r *PostgresRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}

	query :=
		`INSERT INTO admins (id, email, name, company, position, avatar, password_hash)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		admin.ID, admin.Email, admin.Name, admin.Company, admin.Position, admin.Avatar, admin.PasswordHash).
		Scan(&admin.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorConflict
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return admin, nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	query :=
		`SELECT id, email, name, company, position, avatar, password_hash, created_at
		 FROM admins
		 WHERE email = $1
		 `

	a := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&a.ID, &a.Email, &a.Name, &a.Company, &a.Position, &a.Avatar, &a.PasswordHash, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

// UpdateProfile applies the non-nil fields of upd in a single statement;
// COALESCE keeps the stored value for every absent field.
func (r *PostgresRepository) UpdateProfile(ctx context.Context, email string, upd models.AdminProfileUpdate) (*models.Admin, error) {
	query :=
		`UPDATE admins SET
		   name = COALESCE($2, name),
		   company = COALESCE($3, company),
		   position = COALESCE($4, position)
		 WHERE email = $1
		 RETURNING id, email, name, company, position, avatar, password_hash, created_at
		 `

	a := &models.Admin{}
	err := r.db.QueryRowContext(ctx, query, email,
		nullable(upd.Name), nullable(upd.Company), nullable(upd.Position)).
		Scan(&a.ID, &a.Email, &a.Name, &a.Company, &a.Position, &a.Avatar, &a.PasswordHash, &a.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) UpdatePassword(ctx context.Context, email, passwordHash string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET password_hash = $2 WHERE email = $1`, email, passwordHash)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) SetAvatar(ctx context.Context, email, key string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admins SET avatar = $2 WHERE email = $1`, email, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func (r *PostgresRepository) Delete(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return requireRow(res)
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
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
