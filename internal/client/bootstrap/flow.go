// Package bootstrap drives a login from an identity key to an authenticated
// session: first-time password creation, password entry and recovery
// through the security answer.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/client/client"
	"github.com/dmitrijs2005/planwise/internal/client/models"
	"github.com/dmitrijs2005/planwise/internal/common"
)

type State int

const (
	NameEntry State = iota
	NoPasswordYet
	PasswordEntry
	SecurityAnswerEntry
	ResetEntry
	Authenticated
)

var stateNames = [...]string{
	NameEntry:           "name-entry",
	NoPasswordYet:       "no-password-yet",
	PasswordEntry:       "password-entry",
	SecurityAnswerEntry: "security-answer-entry",
	ResetEntry:          "reset-entry",
	Authenticated:       "authenticated",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

type Session = models.Session

var (
	// ErrInvalidTransition is returned when an input does not belong to the
	// current state. The server is not contacted.
	ErrInvalidTransition = errors.New("invalid transition")

	ErrWrongAnswer = errors.New("security answer does not match")
)

// API is the part of client.Client the flow drives.
type API interface {
	HasPassword(ctx context.Context, name string) (bool, error)
	CreatePassword(ctx context.Context, name, password, securityAnswer string) error
	MemberLogin(ctx context.Context, name, password string) (*api.Member, string, error)
	VerifySecurityAnswer(ctx context.Context, name, answer string) (bool, error)
	ResetPassword(ctx context.Context, name, newPassword string) error
	AdminLogin(ctx context.Context, email, password string) (*api.Admin, string, error)
}

// Flow is one login attempt. It is safe for concurrent use, but inputs are
// applied one at a time.
type Flow struct {
	api API

	mu      sync.Mutex
	state   State
	name    string
	session Session
}

func NewFlow(c API) *Flow {
	return &Flow{api: c, state: NameEntry}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Name returns the team member the flow is working on, empty in NameEntry
// and after an admin login.
func (f *Flow) Name() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name
}

// Session returns the session once the flow is Authenticated.
func (f *Flow) Session() (Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != Authenticated {
		return Session{}, false
	}
	return f.session, true
}

// Restart abandons the current attempt and returns to NameEntry.
func (f *Flow) Restart() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = NameEntry
	f.name = ""
	f.session = Session{}
}

func (f *Flow) expect(want State) error {
	if f.state != want {
		return fmt.Errorf("%w: requires %s, flow is in %s", ErrInvalidTransition, want, f.state)
	}
	return nil
}

// EnterName routes name to password creation or password entry. On any
// error, including NotFound, the flow stays in NameEntry.
func (f *Flow) EnterName(ctx context.Context, name string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(NameEntry); err != nil {
		return f.state, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return f.state, fmt.Errorf("%w: name is empty", common.ErrorBadRequest)
	}

	has, err := f.api.HasPassword(ctx, name)
	if err != nil {
		return f.state, err
	}

	f.name = name
	if has {
		f.state = PasswordEntry
	} else {
		f.state = NoPasswordYet
	}
	return f.state, nil
}

// CreatePassword sets the first password and security answer, then sends
// the member to password entry. A Conflict (someone set it first) also
// moves on to password entry.
func (f *Flow) CreatePassword(ctx context.Context, password, securityAnswer string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(NoPasswordYet); err != nil {
		return f.state, err
	}

	err := f.api.CreatePassword(ctx, f.name, password, securityAnswer)
	if err != nil && !errors.Is(err, common.ErrorConflict) {
		return f.state, err
	}
	f.state = PasswordEntry
	return f.state, err
}

func (f *Flow) Login(ctx context.Context, password string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(PasswordEntry); err != nil {
		return f.state, err
	}

	_, token, err := f.api.MemberLogin(ctx, f.name, password)
	if err != nil {
		return f.state, err
	}
	f.authenticate(f.name, common.RoleMember, token)
	return f.state, nil
}

// Forgot starts recovery from password entry.
func (f *Flow) Forgot() (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(PasswordEntry); err != nil {
		return f.state, err
	}
	f.state = SecurityAnswerEntry
	return f.state, nil
}

func (f *Flow) AnswerSecurityQuestion(ctx context.Context, answer string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(SecurityAnswerEntry); err != nil {
		return f.state, err
	}

	ok, err := f.api.VerifySecurityAnswer(ctx, f.name, answer)
	if err != nil {
		return f.state, err
	}
	if !ok {
		return f.state, ErrWrongAnswer
	}
	f.state = ResetEntry
	return f.state, nil
}

// ResetPassword stores the new password and sends the member back to
// password entry to log in with it.
func (f *Flow) ResetPassword(ctx context.Context, newPassword string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(ResetEntry); err != nil {
		return f.state, err
	}

	if err := f.api.ResetPassword(ctx, f.name, newPassword); err != nil {
		return f.state, err
	}
	f.state = PasswordEntry
	return f.state, nil
}

// AdminLogin is the admin branch: it is accepted only from NameEntry and
// goes straight to Authenticated.
func (f *Flow) AdminLogin(ctx context.Context, email, password string) (State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.expect(NameEntry); err != nil {
		return f.state, err
	}
	email = strings.TrimSpace(email)

	_, token, err := f.api.AdminLogin(ctx, email, password)
	if err != nil {
		return f.state, err
	}
	f.authenticate(email, common.RoleAdmin, token)
	return f.state, nil
}

func (f *Flow) authenticate(identity, role, token string) {
	s := Session{Identity: identity, Role: role, Token: token}
	if exp, err := client.TokenExpiry(token); err == nil {
		s.ExpiresAt = exp
	}
	f.session = s
	f.state = Authenticated
}
