package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/planwise/internal/client/models"
	"github.com/dmitrijs2005/planwise/internal/dbx"
)

const (
	sessionPrefix = "session."

	keySessionIdentity  = sessionPrefix + "identity"
	keySessionRole      = sessionPrefix + "role"
	keySessionToken     = sessionPrefix + "token"
	keySessionExpiresAt = sessionPrefix + "expires_at"
)

// SessionStore persists a single login session under the "session." prefix.
// Save replaces the whole group in one transaction so a reader never sees a
// token paired with another identity.
type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Save(ctx context.Context, session models.Session) error {
	values := map[string][]byte{
		keySessionIdentity: []byte(session.Identity),
		keySessionRole:     []byte(session.Role),
		keySessionToken:    []byte(session.Token),
	}
	if !session.ExpiresAt.IsZero() {
		values[keySessionExpiresAt] = []byte(session.ExpiresAt.UTC().Format(time.RFC3339))
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if _, err := repo.DeletePrefix(ctx, sessionPrefix); err != nil {
			return err
		}
		return repo.Put(ctx, values)
	})
}

// Load returns (nil, nil) when no session is stored.
func (s *SessionStore) Load(ctx context.Context) (*models.Session, error) {
	values, err := NewSQLiteRepository(s.db).Scan(ctx, sessionPrefix)
	if err != nil {
		return nil, err
	}

	token, identity := string(values[keySessionToken]), string(values[keySessionIdentity])
	if token == "" || identity == "" {
		return nil, nil
	}

	session := &models.Session{
		Identity: identity,
		Role:     string(values[keySessionRole]),
		Token:    token,
	}
	if raw := string(values[keySessionExpiresAt]); raw != "" {
		exp, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, fmt.Errorf("bad session expiry %q: %w", raw, err)
		}
		session.ExpiresAt = exp
	}
	return session, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	_, err := NewSQLiteRepository(s.db).DeletePrefix(ctx, sessionPrefix)
	return err
}
