package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the identity key in Subject (admin email or member name),
// the row ID of that identity at issue time and the caller's role.
type Claims struct {
	jwt.RegisteredClaims
	IdentityID string `json:"iid,omitempty"`
	Role       string `json:"role"`
}

func GenerateToken(subject, identityID, role string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		IdentityID: identityID,
		Role:       role,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry of tokenString.
// It returns common.ErrTokenExpired for expired tokens and
// common.ErrInvalidToken for anything else that fails validation.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
