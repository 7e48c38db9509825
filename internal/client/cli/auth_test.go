package cli

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/planwise/internal/client/models"
	"github.com/dmitrijs2005/planwise/internal/common"
)

func TestLogin_FirstTimeMember(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{}
	ta := newTestApp(t, fc, "  alice ", "Blue")
	stubPasswords(t, "p1", "p1", "p1")

	require.NoError(t, ta.Login(context.Background()))

	assert.Equal(t, "p1", fc.members["alice"].password)
	assert.Equal(t, "blue", fc.members["alice"].answer)
	assert.Equal(t, []string{"HasPassword", "CreatePassword", "MemberLogin"}, fc.calls)

	require.NotNil(t, ta.sessions.s)
	assert.Equal(t, "alice", ta.sessions.s.Identity)
	assert.Equal(t, common.RoleMember, ta.sessions.s.Role)
	assert.Equal(t, "(alice member)", ta.status())
	assert.Contains(t, ta.out.String(), "Password created. Please log in.")
}

func TestLogin_ReturningMember(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{password: "p1", answer: "blue"}
	ta := newTestApp(t, fc, "alice")
	stubPasswords(t, "wrong", "p1")

	require.NoError(t, ta.Login(context.Background()))
	assert.Contains(t, ta.out.String(), "Error: unauthorized")
	assert.Contains(t, ta.out.String(), "Logged in as alice")
}

func TestLogin_ForgotPassword(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{password: "old", answer: "blue"}
	ta := newTestApp(t, fc, "alice", "red", " BLUE ")
	stubPasswords(t, "", "new", "new", "new")

	require.NoError(t, ta.Login(context.Background()))

	assert.Equal(t, "new", fc.members["alice"].password)
	assert.Equal(t, []string{
		"HasPassword",
		"VerifySecurityAnswer", "VerifySecurityAnswer",
		"ResetPassword",
		"MemberLogin",
	}, fc.calls)
	assert.Contains(t, ta.out.String(), "security answer does not match")
	assert.Contains(t, ta.out.String(), "Password reset. Please log in.")
}

func TestLogin_PasswordMismatchIsRetried(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{}
	ta := newTestApp(t, fc, "alice", "blue")
	stubPasswords(t, "a", "b", "p", "p", "p")

	require.NoError(t, ta.Login(context.Background()))
	assert.Contains(t, ta.out.String(), "passwords do not match")
	assert.Equal(t, "p", fc.members["alice"].password)
}

func TestLogin_TooManyFailures(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{password: "p1"}
	ta := newTestApp(t, fc, "alice")
	stubPasswords(t, "x", "y", "z", "p1")

	err := ta.Login(context.Background())
	require.EqualError(t, err, "too many failed attempts")
	assert.Nil(t, ta.session)
	assert.Nil(t, ta.sessions.s)
}

func TestLogin_UnknownName(t *testing.T) {
	ta := newTestApp(t, newFakeClient(), "ghost")

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Nil(t, ta.session)
}

func TestLogin_InputEndsStopsFlow(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{password: "p1"}
	ta := newTestApp(t, fc, "alice")
	stubPasswords(t)

	err := ta.Login(context.Background())
	require.Error(t, err)
	assert.Equal(t, []string{"HasPassword"}, fc.calls)
}

func TestLogin_ConflictGoesToPasswordEntry(t *testing.T) {
	fc := newFakeClient()
	fc.members["alice"] = &fakeMember{}
	ta := newTestApp(t, fc, "alice", "blue")

	// the password is set by someone else between name entry and creation
	orig := getPassword
	calls := 0
	getPassword = func(io.Writer, string) ([]byte, error) {
		calls++
		if calls == 1 {
			fc.members["alice"].password = "theirs"
		}
		if calls <= 2 {
			return []byte("mine"), nil
		}
		return []byte("theirs"), nil
	}
	t.Cleanup(func() { getPassword = orig })

	require.NoError(t, ta.Login(context.Background()))
	assert.Equal(t, "theirs", fc.members["alice"].password)
	assert.Contains(t, ta.out.String(), "already been set")
}

func TestAdminLogin_CachesSession(t *testing.T) {
	fc := newFakeClient()
	fc.admins["boss@example.org"] = &fakeAdmin{password: "pw", name: "Boss"}
	ta := newTestApp(t, fc, " boss@example.org ")
	stubPasswords(t, "pw")

	require.NoError(t, ta.AdminLogin(context.Background()))
	require.NotNil(t, ta.sessions.s)
	assert.Equal(t, "boss@example.org", ta.sessions.s.Identity)
	assert.True(t, ta.sessions.s.IsAdmin())

	require.NoError(t, ta.Logout(context.Background()))
	assert.Nil(t, ta.session)
	assert.Nil(t, ta.sessions.s)

	assert.ErrorIs(t, ta.Logout(context.Background()), errNotLoggedIn)
}

func TestAdminLogin_WrongPassword(t *testing.T) {
	fc := newFakeClient()
	fc.admins["boss@example.org"] = &fakeAdmin{password: "pw"}
	ta := newTestApp(t, fc, "boss@example.org")
	stubPasswords(t, "nope")

	err := ta.AdminLogin(context.Background())
	require.ErrorIs(t, err, common.ErrorUnauthorized)
	assert.Nil(t, ta.session)
}

func TestSignup(t *testing.T) {
	fc := newFakeClient()
	ta := newTestApp(t, fc, "boss@example.org", "Boss", "", "CTO")
	stubPasswords(t, "pw", "pw")

	require.NoError(t, ta.Signup(context.Background()))
	require.Contains(t, fc.admins, "boss@example.org")
	a := fc.admins["boss@example.org"]
	assert.Equal(t, "Boss", a.name)
	assert.Equal(t, "", a.company)
	assert.Equal(t, "CTO", a.position)
	assert.Equal(t, "pw", a.password)
}

func TestSignup_Duplicate(t *testing.T) {
	fc := newFakeClient()
	fc.admins["boss@example.org"] = &fakeAdmin{password: "pw"}
	ta := newTestApp(t, fc, "boss@example.org", "Boss", "", "")
	stubPasswords(t, "pw", "pw")

	require.ErrorIs(t, ta.Signup(context.Background()), common.ErrorConflict)
}

func TestWhoami(t *testing.T) {
	ta := newTestApp(t, newFakeClient())
	require.ErrorIs(t, ta.Whoami(context.Background()), errNotLoggedIn)

	loginAs(ta, "alice", common.RoleMember)
	require.NoError(t, ta.Whoami(context.Background()))
	assert.Contains(t, ta.out.String(), "alice (member)")
}

func TestResumeSession(t *testing.T) {
	origNow := now
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now = func() time.Time { return fixed }
	t.Cleanup(func() { now = origNow })

	t.Run("valid session is resumed", func(t *testing.T) {
		ta := newTestApp(t, newFakeClient())
		ta.sessions.s = &models.Session{Identity: "alice", Role: "member", Token: "tok", ExpiresAt: fixed.Add(time.Hour)}

		ta.resumeSession(context.Background())
		require.NotNil(t, ta.session)
		assert.Equal(t, "alice", ta.session.Identity)
	})

	t.Run("expired session is dropped", func(t *testing.T) {
		ta := newTestApp(t, newFakeClient())
		ta.sessions.s = &models.Session{Identity: "alice", Role: "member", Token: "tok", ExpiresAt: fixed.Add(-time.Minute)}

		ta.resumeSession(context.Background())
		assert.Nil(t, ta.session)
		assert.Nil(t, ta.sessions.s)
		assert.Equal(t, 1, ta.sessions.cleared)
	})

	t.Run("nothing cached", func(t *testing.T) {
		ta := newTestApp(t, newFakeClient())
		ta.resumeSession(context.Background())
		assert.Nil(t, ta.session)
		assert.Equal(t, 0, ta.sessions.cleared)
	})

	t.Run("session expiring mid-run is dropped", func(t *testing.T) {
		ta := newTestApp(t, newFakeClient())
		ta.session = &models.Session{Identity: "alice", Role: "member", Token: "tok", ExpiresAt: fixed.Add(-time.Second)}

		_, err := ta.requireSession(context.Background(), false)
		require.ErrorContains(t, err, "session expired")
		assert.Nil(t, ta.session)
	})
}
