package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/config"
	"github.com/dmitrijs2005/planwise/internal/server/repositories/repomanager"
)

const testSecret = "k"

type fixture struct {
	rm          *repomanager.MemoryRepositoryManager
	credentials *CredentialService
	admins      *AdminService
	roster      *RosterService
	avatars     *fakeAvatars
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	rm := repomanager.NewMemoryRepositoryManager()
	hasher := auth.NewBcryptHasher(auth.MinCost)
	tokens := NewTokenIssuer(newTestConfig())
	avatars := &fakeAvatars{}

	return &fixture{
		rm:          rm,
		credentials: NewCredentialService(nil, rm, hasher, tokens),
		admins:      NewAdminService(nil, rm, hasher, tokens, avatars),
		roster:      NewRosterService(nil, rm),
		avatars:     avatars,
	}
}

type fakeAvatars struct {
	mu       sync.Mutex
	putKeys  []string
	putTypes []string
	putErr   error
	getErr   error
}

func (f *fakeAvatars) PresignPut(ctx context.Context, key, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.putErr != nil {
		return "", f.putErr
	}
	f.putKeys = append(f.putKeys, key)
	f.putTypes = append(f.putTypes, contentType)
	return "https://s3.local/put/" + key, nil
}

func (f *fakeAvatars) PresignGet(ctx context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	return "https://s3.local/get/" + key, nil
}

func newTestConfig() *config.Config {
	return &config.Config{
		SecretKey:                    testSecret,
		SessionTokenValidityDuration: time.Hour,
	}
}
