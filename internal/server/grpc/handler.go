package grpc

import (
	"context"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/models"
)

func adminToAPI(a *models.Admin, avatarURL string) *api.Admin {
	return &api.Admin{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		Company:   a.Company,
		Position:  a.Position,
		Avatar:    a.Avatar,
		AvatarURL: avatarURL,
		CreatedAt: a.CreatedAt,
	}
}

func memberToAPI(m *models.TeamMember) *api.Member {
	return &api.Member{
		ID:          m.ID,
		Name:        m.Name,
		Email:       m.Email,
		Role:        m.Role,
		HasPassword: m.HasPassword(),
		CreatedAt:   m.CreatedAt,
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *api.PingRequest) (*api.PingResponse, error) {
	return &api.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) HasPassword(ctx context.Context, req *api.HasPasswordRequest) (*api.HasPasswordResponse, error) {
	has, err := s.credentials.HasPassword(ctx, req.Name)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.HasPasswordResponse{HasPassword: has}, nil
}

func (s *GRPCServer) CreatePassword(ctx context.Context, req *api.CreatePasswordRequest) (*api.MessageResponse, error) {
	if err := s.credentials.CreatePassword(ctx, req.Name, req.Password, req.SecurityAnswer); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Password created", "member", req.Name)
	return &api.MessageResponse{Message: "password created"}, nil
}

func (s *GRPCServer) MemberLogin(ctx context.Context, req *api.MemberLoginRequest) (*api.MemberLoginResponse, error) {
	m, token, err := s.credentials.MemberLogin(ctx, req.Name, req.Password)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.MemberLoginResponse{Member: memberToAPI(m), AccessToken: token}, nil
}

func (s *GRPCServer) VerifySecurityAnswer(ctx context.Context, req *api.VerifySecurityAnswerRequest) (*api.VerifySecurityAnswerResponse, error) {
	ok, err := s.credentials.VerifySecurityAnswer(ctx, req.Name, req.Answer)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.VerifySecurityAnswerResponse{Success: ok}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *api.ResetPasswordRequest) (*api.MessageResponse, error) {
	if err := s.credentials.ResetPassword(ctx, req.Name, req.NewPassword); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Password reset", "member", req.Name)
	return &api.MessageResponse{Message: "password reset"}, nil
}

func (s *GRPCServer) AdminSignup(ctx context.Context, req *api.AdminSignupRequest) (*api.MessageResponse, error) {
	profile := models.Admin{Email: req.Email, Name: req.Name, Company: req.Company, Position: req.Position}
	if _, err := s.admins.Signup(ctx, profile, req.Password); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Admin registered", "email", req.Email)
	return &api.MessageResponse{Message: "admin registered"}, nil
}

func (s *GRPCServer) AdminLogin(ctx context.Context, req *api.AdminLoginRequest) (*api.AdminLoginResponse, error) {
	a, token, err := s.admins.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.AdminLoginResponse{Message: "login successful", AccessToken: token, Admin: adminToAPI(a, "")}, nil
}

func (s *GRPCServer) GetAdmin(ctx context.Context, req *api.GetAdminRequest) (*api.AdminResponse, error) {
	if err := requireSelf(ctx, req.Email); err != nil {
		return nil, err
	}
	a, url, err := s.admins.Get(ctx, req.Email)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.AdminResponse{Admin: adminToAPI(a, url)}, nil
}

func (s *GRPCServer) UpdateAdmin(ctx context.Context, req *api.UpdateAdminRequest) (*api.AdminResponse, error) {
	if err := requireSelf(ctx, req.Email); err != nil {
		return nil, err
	}
	upd := models.AdminProfileUpdate{
		Name:     req.Name,
		Company:  req.Company,
		Position: req.Position,
	}
	a, url, err := s.admins.Update(ctx, req.Email, upd)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.AdminResponse{Admin: adminToAPI(a, url)}, nil
}

func (s *GRPCServer) ChangeAdminPassword(ctx context.Context, req *api.ChangeAdminPasswordRequest) (*api.MessageResponse, error) {
	if err := requireSelf(ctx, req.Email); err != nil {
		return nil, err
	}
	if err := s.admins.ChangePassword(ctx, req.Email, req.CurrentPassword, req.NewPassword); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Admin password changed", "email", req.Email)
	return &api.MessageResponse{Message: "password changed"}, nil
}

func (s *GRPCServer) DeleteAdmin(ctx context.Context, req *api.DeleteAdminRequest) (*api.MessageResponse, error) {
	if err := requireSelf(ctx, req.Email); err != nil {
		return nil, err
	}
	if err := s.admins.Delete(ctx, req.Email); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Admin deleted", "email", req.Email)
	return &api.MessageResponse{Message: "admin deleted"}, nil
}

func (s *GRPCServer) AvatarUploadURL(ctx context.Context, req *api.AvatarUploadURLRequest) (*api.AvatarUploadURLResponse, error) {
	if err := requireSelf(ctx, req.Email); err != nil {
		return nil, err
	}
	url, key, err := s.admins.AvatarUploadURL(ctx, req.Email, req.ContentType)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.AvatarUploadURLResponse{URL: url, Key: key}, nil
}

func (s *GRPCServer) AddMember(ctx context.Context, req *api.AddMemberRequest) (*api.MemberResponse, error) {
	m, err := s.roster.AddMember(ctx, req.Name, req.Email, req.Role)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Member added", "member", req.Name)
	return &api.MemberResponse{Member: memberToAPI(m)}, nil
}

func (s *GRPCServer) GetMember(ctx context.Context, req *api.GetMemberRequest) (*api.MemberResponse, error) {
	if c, ok := claimsFromContext(ctx); ok && c.Role == common.RoleMember {
		if err := requireSelf(ctx, req.Name); err != nil {
			return nil, err
		}
	}
	m, err := s.roster.GetMember(ctx, req.Name)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &api.MemberResponse{Member: memberToAPI(m)}, nil
}

func (s *GRPCServer) ListMembers(ctx context.Context, req *api.ListMembersRequest) (*api.ListMembersResponse, error) {
	list, err := s.roster.ListMembers(ctx)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	out := make([]*api.Member, 0, len(list))
	for _, m := range list {
		out = append(out, memberToAPI(m))
	}
	return &api.ListMembersResponse{Members: out}, nil
}

func (s *GRPCServer) RemoveMember(ctx context.Context, req *api.RemoveMemberRequest) (*api.MessageResponse, error) {
	if err := s.roster.RemoveMember(ctx, req.Name); err != nil {
		return nil, s.statusError(ctx, err)
	}
	s.logger.Info(ctx, "Member removed", "member", req.Name)
	return &api.MessageResponse{Message: "member removed"}, nil
}
