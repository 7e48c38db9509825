package services

import (
	"time"

	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/config"
)

// TokenIssuer signs session tokens for authenticated identities.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
}

func NewTokenIssuer(cfg *config.Config) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(cfg.SecretKey),
		validity: cfg.SessionTokenValidityDuration,
	}
}

// Issue signs a token for the identity stored under subject with row ID id.
func (t *TokenIssuer) Issue(subject, id, role string) (string, error) {
	return auth.GenerateToken(subject, id, role, t.secret, t.validity)
}
