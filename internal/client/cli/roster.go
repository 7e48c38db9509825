package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

func (a *App) Members(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	members, err := a.client.ListMembers(ctx, s.Token)
	if err != nil {
		return a.checkAuth(ctx, err)
	}
	if len(members) == 0 {
		fmt.Fprintln(a.out, "No team members")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tROLE\tPASSWORD")
	for _, m := range members {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Email, m.Role, yesNo(m.HasPassword))
	}
	return w.Flush()
}

func (a *App) AddMember(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	var values [3]string
	for i, prompt := range []string{"Member name", "Email (optional)", "Role (optional)"} {
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		values[i] = v
	}

	m, err := a.client.AddMember(ctx, s.Token, values[0], values[1], values[2])
	if err != nil {
		return a.checkAuth(ctx, err)
	}
	fmt.Fprintf(a.out, "Added %s. They set their password at first login.\n", m.Name)
	return nil
}

func (a *App) RemoveMember(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Member name", a.out)
	if err != nil {
		return err
	}
	if err := a.client.RemoveMember(ctx, s.Token, name); err != nil {
		return a.checkAuth(ctx, err)
	}
	fmt.Fprintf(a.out, "Removed %s\n", name)
	return nil
}
