package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct{ calls []string }

func (r *recorder) cmd(name string, err error) command {
	return command{name: name, help: name + " help", run: func(context.Context) error {
		r.calls = append(r.calls, name)
		return err
	}}
}

func TestRunREPL_Dispatch(t *testing.T) {
	rec := &recorder{}
	cmds := []command{rec.cmd("login", nil), rec.cmd("members", errors.New("admins only"))}
	var out bytes.Buffer

	in := readerFromLines("", "help", "login", "members extra args", "foobar", "exit", "login")
	runREPL(context.Background(), cmds, func() string { return "(s)" }, in, &out)

	assert.Equal(t, []string{"login", "members"}, rec.calls)
	got := out.String()
	assert.Contains(t, got, "planwise (s)> ")
	assert.Contains(t, got, "members help")
	assert.Contains(t, got, "Error: admins only")
	assert.Contains(t, got, "Unknown command: foobar")
	assert.Contains(t, got, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	rec := &recorder{}
	var out bytes.Buffer

	runREPL(context.Background(), []command{rec.cmd("login", nil)}, func() string { return "" },
		readerFromLines("login"), &out)

	assert.Equal(t, []string{"login"}, rec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_StopsWhenContextCancelled(t *testing.T) {
	rec := &recorder{}
	ctx, cancel := context.WithCancel(context.Background())
	cmds := []command{{name: "quitnow", run: func(context.Context) error {
		rec.calls = append(rec.calls, "quitnow")
		cancel()
		return nil
	}}}

	var out bytes.Buffer
	runREPL(ctx, cmds, func() string { return "" }, readerFromLines("quitnow", "quitnow"), &out)

	assert.Equal(t, []string{"quitnow"}, rec.calls)
}

func TestAppCommands_AreUniqueAndDocumented(t *testing.T) {
	a := newTestApp(t, newFakeClient())
	seen := map[string]bool{}
	for _, c := range a.commands() {
		assert.False(t, seen[c.name], c.name)
		seen[c.name] = true
		assert.NotEmpty(t, strings.TrimSpace(c.help), c.name)
		assert.NotNil(t, c.run, c.name)
	}
	for _, name := range []string{"login", "admin-login", "signup", "logout", "members", "avatar"} {
		assert.True(t, seen[name], name)
	}
}

func TestApp_RunEndToEnd(t *testing.T) {
	fc := newFakeClient()
	fc.admins["boss@example.org"] = &fakeAdmin{password: "pw", name: "Boss"}
	ta := newTestApp(t, fc, "admin-login", "boss@example.org", "whoami", "logout", "whoami", "quit")
	stubPasswords(t, "pw")

	ta.Run(context.Background())

	out := ta.out.String()
	assert.Contains(t, out, "Welcome to PlanWise CLI")
	assert.Contains(t, out, "planwise (boss@example.org admin)> ")
	assert.Contains(t, out, "boss@example.org (admin)")
	assert.Contains(t, out, "Logged out")
	assert.Contains(t, out, "Error: not logged in")
}
