package auth

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/planwise/internal/common"
	"golang.org/x/crypto/bcrypt"
)

// MinCost is the lowest bcrypt work factor the server accepts.
const MinCost = 10

// Hasher turns secrets into one-way hashes and checks candidates against them.
type Hasher interface {
	Hash(secret string) (string, error)
	Compare(hash, candidate string) (bool, error)
}

type BcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt Hasher. Costs below MinCost are raised to it.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < MinCost {
		cost = MinCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Cost() int {
	return h.cost
}

// Hash fails with common.ErrorBadRequest for secrets longer than 72 bytes.
func (h *BcryptHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: secret is too long", common.ErrorBadRequest)
		}
		return "", err
	}
	return string(b), nil
}

// Compare reports a mismatch as (false, nil); only a malformed hash is an error.
func (h *BcryptHasher) Compare(hash, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword), errors.Is(err, bcrypt.ErrPasswordTooLong):
		return false, nil
	default:
		return false, err
	}
}
