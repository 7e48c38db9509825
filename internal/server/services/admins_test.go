package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"github.com/dmitrijs2005/planwise/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupAda(t *testing.T, f *fixture) *models.Admin {
	t.Helper()
	a, err := f.admins.Signup(context.Background(),
		models.Admin{Email: "ada@x.com", Name: "Ada", Company: "Acme", Position: "CTO"}, "pw")
	require.NoError(t, err)
	return a
}

func TestAdminSignup_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		profile  models.Admin
		password string
	}{
		{"no email", models.Admin{Name: "Ada"}, "pw"},
		{"no name", models.Admin{Email: "ada@x.com"}, "pw"},
		{"no password", models.Admin{Email: "ada@x.com", Name: "Ada"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.admins.Signup(ctx, tt.profile, tt.password)
			assert.ErrorIs(t, err, common.ErrorBadRequest)
		})
	}
}

func TestAdminSignup_DuplicateKeepsOriginal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := signupAda(t, f)
	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, "pw", created.PasswordHash)

	_, err := f.admins.Signup(ctx, models.Admin{Email: "ada@x.com", Name: "Impostor"}, "other")
	assert.ErrorIs(t, err, common.ErrorConflict)

	for i := 0; i < 3; i++ {
		a, token, err := f.admins.Login(ctx, "ada@x.com", "pw")
		require.NoError(t, err)
		assert.Equal(t, "Ada", a.Name)

		claims, err := auth.ParseToken(token, []byte(testSecret))
		require.NoError(t, err)
		assert.Equal(t, "ada@x.com", claims.Subject)
		assert.Equal(t, common.RoleAdmin, claims.Role)
	}

	_, _, err = f.admins.Login(ctx, "ada@x.com", "other")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAdminLogin_UniformFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	_, _, errUnknown := f.admins.Login(ctx, "ghost@x.com", "pw")
	_, _, errWrong := f.admins.Login(ctx, "ada@x.com", "nope")

	assert.ErrorIs(t, errUnknown, common.ErrorUnauthorized)
	assert.ErrorIs(t, errWrong, common.ErrorUnauthorized)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestAdminUpdate_PartialProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	pos := "CEO"
	a, url, err := f.admins.Update(ctx, "ada@x.com", models.AdminProfileUpdate{Position: &pos})
	require.NoError(t, err)
	assert.Equal(t, "CEO", a.Position)
	assert.Equal(t, "Acme", a.Company)
	assert.Empty(t, url)

	// the password is untouched by profile updates
	_, _, err = f.admins.Login(ctx, "ada@x.com", "pw")
	require.NoError(t, err)

	a, _, err = f.admins.Update(ctx, "ada@x.com", models.AdminProfileUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "CEO", a.Position)

	_, _, err = f.admins.Update(ctx, "ghost@x.com", models.AdminProfileUpdate{Position: &pos})
	assert.ErrorIs(t, err, common.ErrorNotFound)
	_, _, err = f.admins.Update(ctx, "ghost@x.com", models.AdminProfileUpdate{})
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAdminChangePassword(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	assert.ErrorIs(t, f.admins.ChangePassword(ctx, "ada@x.com", "pw", ""), common.ErrorBadRequest)
	assert.ErrorIs(t, f.admins.ChangePassword(ctx, "ada@x.com", "wrong", "new"), common.ErrorUnauthorized)
	assert.ErrorIs(t, f.admins.ChangePassword(ctx, "ghost@x.com", "pw", "new"), common.ErrorNotFound)

	require.NoError(t, f.admins.ChangePassword(ctx, "ada@x.com", "pw", "new"))

	_, _, err := f.admins.Login(ctx, "ada@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
	_, _, err = f.admins.Login(ctx, "ada@x.com", "new")
	require.NoError(t, err)
}

func TestAdminDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	require.NoError(t, f.admins.Delete(ctx, "ada@x.com"))
	assert.ErrorIs(t, f.admins.Delete(ctx, "ada@x.com"), common.ErrorNotFound)

	_, _, err := f.admins.Get(ctx, "ada@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	_, _, err = f.admins.Login(ctx, "ada@x.com", "pw")
	assert.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestAdminAvatarUploadURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := signupAda(t, f)

	url, key, err := f.admins.AvatarUploadURL(ctx, "ada@x.com", "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "avatars/"+created.ID+"/"), key)
	assert.Equal(t, "https://s3.local/put/"+key, url)
	assert.Equal(t, []string{"image/png"}, f.avatars.putTypes)

	a, getURL, err := f.admins.Get(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, key, a.Avatar)
	assert.Equal(t, "https://s3.local/get/"+key, getURL)

	_, _, err = f.admins.AvatarUploadURL(ctx, "ghost@x.com", "image/png")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAdminAvatarUploadURL_PresignFailureLeavesProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)
	f.avatars.putErr = errors.New("presign-fail")

	_, _, err := f.admins.AvatarUploadURL(ctx, "ada@x.com", "")
	assert.ErrorContains(t, err, "presign-fail")

	a, url, err := f.admins.Get(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Empty(t, a.Avatar)
	assert.Empty(t, url)
}

func TestAdminAvatar_OnlyOwnKeysArePresigned(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)
	_, err := f.admins.Signup(ctx, models.Admin{Email: "vic@x.com", Name: "Vic"}, "pw")
	require.NoError(t, err)

	_, vicKey, err := f.admins.AvatarUploadURL(ctx, "vic@x.com", "image/png")
	require.NoError(t, err)

	for _, key := range []string{vicKey, "backups/db.dump", "avatars/"} {
		require.NoError(t, f.rm.Admins(nil).SetAvatar(ctx, "ada@x.com", key))

		_, url, err := f.admins.Get(ctx, "ada@x.com")
		require.NoError(t, err)
		assert.Empty(t, url, key)

		company := "Evil"
		_, url, err = f.admins.Update(ctx, "ada@x.com", models.AdminProfileUpdate{Company: &company})
		require.NoError(t, err)
		assert.Empty(t, url, key)
	}

	_, url, err := f.admins.Get(ctx, "vic@x.com")
	require.NoError(t, err)
	assert.Equal(t, "https://s3.local/get/"+vicKey, url)
}

func TestAdminUpdate_KeepsUploadedAvatar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	_, key, err := f.admins.AvatarUploadURL(ctx, "ada@x.com", "image/png")
	require.NoError(t, err)

	name := "Ada L."
	a, url, err := f.admins.Update(ctx, "ada@x.com", models.AdminProfileUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, key, a.Avatar)
	assert.Equal(t, "https://s3.local/get/"+key, url)
}

func TestAdminUpdate_RejectsEmptyName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	signupAda(t, f)

	for _, name := range []string{"", "   "} {
		_, _, err := f.admins.Update(ctx, "ada@x.com", models.AdminProfileUpdate{Name: &name})
		assert.ErrorIs(t, err, common.ErrorBadRequest)
	}

	a, _, err := f.admins.Get(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", a.Name)
}

func TestIdentityID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := signupAda(t, f)

	id, err := f.admins.IdentityID(ctx, "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, id)

	_, err = f.admins.IdentityID(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, common.ErrorNotFound)

	m, err := f.roster.AddMember(ctx, "Alice", "", "")
	require.NoError(t, err)
	id, err = f.roster.IdentityID(ctx, "Alice")
	require.NoError(t, err)
	assert.Equal(t, m.ID, id)

	_, err = f.roster.IdentityID(ctx, "ghost")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestLoginTokensCarryIdentityID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	created := signupAda(t, f)

	_, token, err := f.admins.Login(ctx, "ada@x.com", "pw")
	require.NoError(t, err)
	claims, err := auth.ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.IdentityID)

	m, err := f.roster.AddMember(ctx, "Alice", "", "")
	require.NoError(t, err)
	require.NoError(t, f.credentials.CreatePassword(ctx, "Alice", "pw", "a"))
	_, token, err = f.credentials.MemberLogin(ctx, "Alice", "pw")
	require.NoError(t, err)
	claims, err = auth.ParseToken(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, m.ID, claims.IdentityID)
}
