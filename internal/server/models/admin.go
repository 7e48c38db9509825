package models

import "time"

// Admin is an account that manages projects and team rosters.
// Email is the lookup key and is unique.
type Admin struct {
	ID           string
	Email        string
	Name         string
	Company      string
	Position     string
	Avatar       string // object key in avatar storage, empty if none
	PasswordHash string
	CreatedAt    time.Time
}

// AdminProfileUpdate is a partial profile: nil fields stay unchanged.
// Passwords change only through AdminService.ChangePassword and the avatar
// key only through AdminService.AvatarUploadURL.
type AdminProfileUpdate struct {
	Name     *string
	Company  *string
	Position *string
}

// Empty reports whether the update would change nothing.
func (u AdminProfileUpdate) Empty() bool {
	return u.Name == nil && u.Company == nil && u.Position == nil
}

// Apply writes the non-nil fields of u onto a.
func (u AdminProfileUpdate) Apply(a *Admin) {
	if u.Name != nil {
		a.Name = *u.Name
	}
	if u.Company != nil {
		a.Company = *u.Company
	}
	if u.Position != nil {
		a.Position = *u.Position
	}
}
