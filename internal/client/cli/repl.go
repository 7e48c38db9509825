package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

type command struct {
	name string
	help string
	run  func(ctx context.Context) error
}

func (a *App) commands() []command {
	return []command{
		{"login", "log in as a team member (first-time setup and recovery included)", a.Login},
		{"admin-login", "log in as an admin", a.AdminLogin},
		{"signup", "create an admin account", a.Signup},
		{"whoami", "show the current session", a.Whoami},
		{"profile", "show your profile", a.Profile},
		{"update-profile", "change admin name, company or position", a.UpdateProfile},
		{"change-password", "change the admin password", a.ChangePassword},
		{"avatar", "upload an avatar image", a.Avatar},
		{"delete-account", "delete the admin account", a.DeleteAccount},
		{"members", "list team members", a.Members},
		{"add-member", "add a team member", a.AddMember},
		{"remove-member", "remove a team member", a.RemoveMember},
		{"logout", "forget the current session", a.Logout},
	}
}

// runREPL reads one command per line from in and dispatches it. The loop
// exits on EOF, on "exit" or "quit", or when ctx is cancelled. Command errors
// are printed and the loop continues.
func runREPL(ctx context.Context, cmds []command, statusFn func() string, in *bufio.Reader, out io.Writer) {
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for ctx.Err() == nil {
		fmt.Fprintf(out, "planwise %s> ", statusFn())
		line, err := readLine(in)
		if err != nil {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		name := parts[0]
		switch name {
		case "help":
			fmt.Fprintln(out, "Available commands:")
			for _, c := range cmds {
				fmt.Fprintf(out, "  %-16s %s\n", c.name, c.help)
			}
			fmt.Fprintf(out, "  %-16s %s\n", "exit", "leave the program")
			continue
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		}

		c, ok := byName[name]
		if !ok {
			fmt.Fprintln(out, "Unknown command:", name)
			continue
		}
		if err := c.run(ctx); err != nil {
			fmt.Fprintln(out, "Error:", err)
		}
	}
}
