package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/client/bootstrap"
	"github.com/dmitrijs2005/planwise/internal/common"
)

// maxAttempts bounds failed inputs within one login.
const maxAttempts = 3

// Login walks a team member through the bootstrap flow until a session is
// obtained, too many attempts fail or input ends.
func (a *App) Login(ctx context.Context) error {
	flow := bootstrap.NewFlow(a.client)

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	st, err := flow.EnterName(ctx, name)
	if err != nil {
		return err
	}

	failures := 0
	for st != bootstrap.Authenticated {
		if failures >= maxAttempts {
			return errors.New("too many failed attempts")
		}

		switch st {
		case bootstrap.NoPasswordYet:
			st, err = a.createPassword(ctx, flow)
		case bootstrap.PasswordEntry:
			st, err = a.enterPassword(ctx, flow)
		case bootstrap.SecurityAnswerEntry:
			st, err = a.answerSecurityQuestion(ctx, flow)
		case bootstrap.ResetEntry:
			st, err = a.resetPassword(ctx, flow)
		default:
			return fmt.Errorf("unexpected login state %s", st)
		}

		if err != nil {
			var inputErr *inputError
			if errors.As(err, &inputErr) {
				return inputErr.err
			}
			fmt.Fprintln(a.out, "Error:", err)
			failures++
		}
	}

	session, _ := flow.Session()
	a.setSession(ctx, session)
	fmt.Fprintf(a.out, "Logged in as %s\n", session.Identity)
	return nil
}

// inputError ends the login loop: reading from the user failed.
type inputError struct{ err error }

func (e *inputError) Error() string { return e.err.Error() }

func (a *App) createPassword(ctx context.Context, flow *bootstrap.Flow) (bootstrap.State, error) {
	fmt.Fprintln(a.out, "You have no password yet. Choose one now.")

	password, err := a.newPassword("New password: ")
	if err != nil {
		return flow.State(), err
	}
	defer common.WipeByteArray(password)

	answer, err := getSimpleText(a.reader, "Security answer (used to recover a forgotten password)", a.out)
	if err != nil {
		return flow.State(), &inputError{err}
	}

	st, err := flow.CreatePassword(ctx, string(password), answer)
	if errors.Is(err, common.ErrorConflict) {
		fmt.Fprintln(a.out, "A password has already been set for this name. Please log in.")
		return st, nil
	}
	if err == nil {
		fmt.Fprintln(a.out, "Password created. Please log in.")
	}
	return st, err
}

func (a *App) enterPassword(ctx context.Context, flow *bootstrap.Flow) (bootstrap.State, error) {
	password, err := getPassword(a.out, "Password (leave empty if you forgot it): ")
	if err != nil {
		return flow.State(), &inputError{err}
	}
	defer common.WipeByteArray(password)

	if len(password) == 0 {
		return flow.Forgot()
	}
	return flow.Login(ctx, string(password))
}

func (a *App) answerSecurityQuestion(ctx context.Context, flow *bootstrap.Flow) (bootstrap.State, error) {
	answer, err := getSimpleText(a.reader, "Enter your security answer", a.out)
	if err != nil {
		return flow.State(), &inputError{err}
	}
	return flow.AnswerSecurityQuestion(ctx, answer)
}

func (a *App) resetPassword(ctx context.Context, flow *bootstrap.Flow) (bootstrap.State, error) {
	password, err := a.newPassword("New password: ")
	if err != nil {
		return flow.State(), err
	}
	defer common.WipeByteArray(password)

	st, err := flow.ResetPassword(ctx, string(password))
	if err == nil {
		fmt.Fprintln(a.out, "Password reset. Please log in.")
	}
	return st, err
}

// newPassword asks for a password twice. A mismatch is a retryable error;
// failing to read is not.
func (a *App) newPassword(prompt string) ([]byte, error) {
	password, err := getPassword(a.out, prompt)
	if err != nil {
		return nil, &inputError{err}
	}
	confirm, err := getPassword(a.out, "Repeat password: ")
	if err != nil {
		common.WipeByteArray(password)
		return nil, &inputError{err}
	}
	defer common.WipeByteArray(confirm)

	if string(password) != string(confirm) {
		common.WipeByteArray(password)
		return nil, errors.New("passwords do not match")
	}
	return password, nil
}

func (a *App) AdminLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out, "Password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	flow := bootstrap.NewFlow(a.client)
	if _, err := flow.AdminLogin(ctx, email, string(password)); err != nil {
		return err
	}

	session, _ := flow.Session()
	a.setSession(ctx, session)
	fmt.Fprintf(a.out, "Logged in as %s\n", session.Identity)
	return nil
}

func (a *App) Signup(ctx context.Context) error {
	req := &api.AdminSignupRequest{}
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Email", &req.Email},
		{"Name", &req.Name},
		{"Company (optional)", &req.Company},
		{"Position (optional)", &req.Position},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := a.newPassword("Password: ")
	if err != nil {
		return unwrapInput(err)
	}
	defer common.WipeByteArray(password)
	req.Password = string(password)

	if err := a.client.AdminSignup(ctx, req); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Account created. Use 'admin-login' to sign in.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if a.session == nil {
		return errNotLoggedIn
	}
	a.dropSession(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	s, err := a.requireSession(ctx, false)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s (%s)", s.Identity, s.Role)
	if !s.ExpiresAt.IsZero() {
		fmt.Fprintf(a.out, ", session valid until %s", s.ExpiresAt.Local().Format("2006-01-02 15:04"))
	}
	fmt.Fprintln(a.out)
	return nil
}

func unwrapInput(err error) error {
	var inputErr *inputError
	if errors.As(err, &inputErr) {
		return inputErr.err
	}
	return err
}
