package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/filex"
	"github.com/dmitrijs2005/planwise/internal/netx"
)

// uploadFn is a test seam for the presigned upload.
var uploadFn = netx.UploadToPresignedURL

// Profile prints the admin profile, or the member's own roster entry.
func (a *App) Profile(ctx context.Context) error {
	s, err := a.requireSession(ctx, false)
	if err != nil {
		return err
	}

	if !s.IsAdmin() {
		m, err := a.client.GetMember(ctx, s.Token, s.Identity)
		if err != nil {
			return a.checkAuth(ctx, err)
		}
		printMember(a, m)
		return nil
	}

	admin, err := a.client.GetAdmin(ctx, s.Token, s.Identity)
	if err != nil {
		return a.checkAuth(ctx, err)
	}
	printAdmin(a, admin)
	return nil
}

func (a *App) UpdateProfile(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	req := &api.UpdateAdminRequest{Email: s.Identity}
	fields := []struct {
		prompt string
		dst    **string
	}{
		{"Name (empty keeps current)", &req.Name},
		{"Company (empty keeps current)", &req.Company},
		{"Position (empty keeps current)", &req.Position},
	}
	changed := false
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*f.dst = &v
			changed = true
		}
	}
	if !changed {
		fmt.Fprintln(a.out, "Nothing to update")
		return nil
	}

	admin, err := a.client.UpdateAdmin(ctx, s.Token, req)
	if err != nil {
		return a.checkAuth(ctx, err)
	}
	printAdmin(a, admin)
	return nil
}

func (a *App) ChangePassword(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	current, err := getPassword(a.out, "Current password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(current)

	next, err := a.newPassword("New password: ")
	if err != nil {
		return unwrapInput(err)
	}
	defer common.WipeByteArray(next)

	// Unauthorized here means a wrong current password, not a stale session.
	if err := a.client.ChangeAdminPassword(ctx, s.Token, s.Identity, string(current), string(next)); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Password changed")
	return nil
}

func (a *App) DeleteAccount(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Type 'yes' to delete %s permanently", s.Identity), a.out)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "yes") {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.client.DeleteAdmin(ctx, s.Token, s.Identity); err != nil {
		return a.checkAuth(ctx, err)
	}
	a.dropSession(ctx)
	fmt.Fprintln(a.out, "Account deleted")
	return nil
}

// Avatar uploads a local image as the admin's avatar.
func (a *App) Avatar(ctx context.Context) error {
	s, err := a.requireSession(ctx, true)
	if err != nil {
		return err
	}

	path, err := getSimpleText(a.reader, "Path to image file", a.out)
	if err != nil {
		return err
	}
	if path == "" {
		return errors.New("no file given")
	}

	data, contentType, err := filex.ReadImage(path, filex.MaxAvatarSize)
	if err != nil {
		return err
	}

	url, key, err := a.client.AvatarUploadURL(ctx, s.Token, s.Identity, contentType)
	if err != nil {
		return a.checkAuth(ctx, err)
	}
	if err := uploadFn(ctx, url, contentType, data); err != nil {
		return fmt.Errorf("avatar upload: %w", err)
	}

	fmt.Fprintf(a.out, "Avatar uploaded (%s)\n", key)
	return nil
}

func printAdmin(a *App, admin *api.Admin) {
	fmt.Fprintf(a.out, "Email:    %s\n", admin.Email)
	fmt.Fprintf(a.out, "Name:     %s\n", admin.Name)
	fmt.Fprintf(a.out, "Company:  %s\n", admin.Company)
	fmt.Fprintf(a.out, "Position: %s\n", admin.Position)
	if admin.AvatarURL != "" {
		fmt.Fprintf(a.out, "Avatar:   %s\n", admin.AvatarURL)
	}
}

func printMember(a *App, m *api.Member) {
	fmt.Fprintf(a.out, "Name:     %s\n", m.Name)
	fmt.Fprintf(a.out, "Email:    %s\n", m.Email)
	fmt.Fprintf(a.out, "Role:     %s\n", m.Role)
	fmt.Fprintf(a.out, "Password: %s\n", yesNo(m.HasPassword))
}

func yesNo(b bool) string {
	if b {
		return "set"
	}
	return "not set"
}
