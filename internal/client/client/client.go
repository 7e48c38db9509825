package client

import (
	"context"

	"github.com/dmitrijs2005/planwise/internal/api"
)

// Client is the PlanWise API as seen by the CLI. Methods that need a session
// take its token as the second argument.
type Client interface {
	Close() error
	Ping(ctx context.Context) error

	HasPassword(ctx context.Context, name string) (bool, error)
	CreatePassword(ctx context.Context, name, password, securityAnswer string) error
	MemberLogin(ctx context.Context, name, password string) (*api.Member, string, error)
	VerifySecurityAnswer(ctx context.Context, name, answer string) (bool, error)
	ResetPassword(ctx context.Context, name, newPassword string) error

	AdminSignup(ctx context.Context, req *api.AdminSignupRequest) error
	AdminLogin(ctx context.Context, email, password string) (*api.Admin, string, error)
	GetAdmin(ctx context.Context, token, email string) (*api.Admin, error)
	UpdateAdmin(ctx context.Context, token string, req *api.UpdateAdminRequest) (*api.Admin, error)
	ChangeAdminPassword(ctx context.Context, token, email, currentPassword, newPassword string) error
	DeleteAdmin(ctx context.Context, token, email string) error
	AvatarUploadURL(ctx context.Context, token, email, contentType string) (string, string, error)

	AddMember(ctx context.Context, token, name, email, role string) (*api.Member, error)
	GetMember(ctx context.Context, token, name string) (*api.Member, error)
	ListMembers(ctx context.Context, token string) ([]*api.Member, error)
	RemoveMember(ctx context.Context, token, name string) error
}
