package api

import "time"

// Admin is the public admin profile. It never carries a password hash.
type Admin struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Company   string    `json:"company,omitempty"`
	Position  string    `json:"position,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Member is the public team member profile.
type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email,omitempty"`
	Role        string    `json:"role,omitempty"`
	HasPassword bool      `json:"hasPassword"`
	CreatedAt   time.Time `json:"createdAt"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}

type HasPasswordRequest struct {
	Name string `json:"name"`
}

type HasPasswordResponse struct {
	HasPassword bool `json:"hasPassword"`
}

type CreatePasswordRequest struct {
	Name           string `json:"name"`
	Password       string `json:"password"`
	SecurityAnswer string `json:"securityAnswer"`
}

type MemberLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type MemberLoginResponse struct {
	Member      *Member `json:"member"`
	AccessToken string  `json:"accessToken"`
}

type VerifySecurityAnswerRequest struct {
	Name   string `json:"name"`
	Answer string `json:"answer"`
}

type VerifySecurityAnswerResponse struct {
	Success bool `json:"success"`
}

type ResetPasswordRequest struct {
	Name        string `json:"name"`
	NewPassword string `json:"newPassword"`
}

type AdminSignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Position string `json:"position,omitempty"`
	Password string `json:"password"`
}

type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AdminLoginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"accessToken"`
	Admin       *Admin `json:"admin"`
}

type GetAdminRequest struct {
	Email string `json:"email"`
}

type AdminResponse struct {
	Admin *Admin `json:"admin"`
}

// UpdateAdminRequest changes only the fields that are present.
type UpdateAdminRequest struct {
	Email    string  `json:"email"`
	Name     *string `json:"name,omitempty"`
	Company  *string `json:"company,omitempty"`
	Position *string `json:"position,omitempty"`
}

type ChangeAdminPasswordRequest struct {
	Email           string `json:"email"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type DeleteAdminRequest struct {
	Email string `json:"email"`
}

type AvatarUploadURLRequest struct {
	Email       string `json:"email"`
	ContentType string `json:"contentType,omitempty"`
}

type AvatarUploadURLResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

type MemberResponse struct {
	Member *Member `json:"member"`
}

type GetMemberRequest struct {
	Name string `json:"name"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type RemoveMemberRequest struct {
	Name string `json:"name"`
}
