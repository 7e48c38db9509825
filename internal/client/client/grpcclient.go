package client

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/common"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      api.PlanWiseClient
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// unaryInterceptor bounds calls that carry no deadline by the configured
// request timeout and translates status errors into package sentinels.
func (s *GRPCClient) unaryInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	return mapError(invoker(ctx, method, req, reply, cc, opts...))
}

// NewGRPCClient creates a client for the server at endpointURL. The
// connection is established lazily on the first call. Extra dial options
// are appended after the defaults.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.unaryInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.client = api.NewPlanWiseClient(conn)
	return c, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &api.PingRequest{})
	if err != nil {
		return err
	}
	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) HasPassword(ctx context.Context, name string) (bool, error) {
	resp, err := s.client.HasPassword(ctx, &api.HasPasswordRequest{Name: name})
	if err != nil {
		return false, err
	}
	return resp.HasPassword, nil
}

func (s *GRPCClient) CreatePassword(ctx context.Context, name, password, securityAnswer string) error {
	_, err := s.client.CreatePassword(ctx, &api.CreatePasswordRequest{
		Name:           name,
		Password:       password,
		SecurityAnswer: securityAnswer,
	})
	return err
}

func (s *GRPCClient) MemberLogin(ctx context.Context, name, password string) (*api.Member, string, error) {
	resp, err := s.client.MemberLogin(ctx, &api.MemberLoginRequest{Name: name, Password: password})
	if err != nil {
		return nil, "", err
	}
	return resp.Member, resp.AccessToken, nil
}

func (s *GRPCClient) VerifySecurityAnswer(ctx context.Context, name, answer string) (bool, error) {
	resp, err := s.client.VerifySecurityAnswer(ctx, &api.VerifySecurityAnswerRequest{Name: name, Answer: answer})
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, name, newPassword string) error {
	_, err := s.client.ResetPassword(ctx, &api.ResetPasswordRequest{Name: name, NewPassword: newPassword})
	return err
}

func (s *GRPCClient) AdminSignup(ctx context.Context, req *api.AdminSignupRequest) error {
	_, err := s.client.AdminSignup(ctx, req)
	return err
}

func (s *GRPCClient) AdminLogin(ctx context.Context, email, password string) (*api.Admin, string, error) {
	resp, err := s.client.AdminLogin(ctx, &api.AdminLoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, "", err
	}
	return resp.Admin, resp.AccessToken, nil
}

func (s *GRPCClient) GetAdmin(ctx context.Context, token, email string) (*api.Admin, error) {
	resp, err := s.client.GetAdmin(withAccessToken(ctx, token), &api.GetAdminRequest{Email: email})
	if err != nil {
		return nil, err
	}
	return resp.Admin, nil
}

func (s *GRPCClient) UpdateAdmin(ctx context.Context, token string, req *api.UpdateAdminRequest) (*api.Admin, error) {
	resp, err := s.client.UpdateAdmin(withAccessToken(ctx, token), req)
	if err != nil {
		return nil, err
	}
	return resp.Admin, nil
}

func (s *GRPCClient) ChangeAdminPassword(ctx context.Context, token, email, currentPassword, newPassword string) error {
	_, err := s.client.ChangeAdminPassword(withAccessToken(ctx, token), &api.ChangeAdminPasswordRequest{
		Email:           email,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	return err
}

func (s *GRPCClient) DeleteAdmin(ctx context.Context, token, email string) error {
	_, err := s.client.DeleteAdmin(withAccessToken(ctx, token), &api.DeleteAdminRequest{Email: email})
	return err
}

func (s *GRPCClient) AvatarUploadURL(ctx context.Context, token, email, contentType string) (string, string, error) {
	resp, err := s.client.AvatarUploadURL(withAccessToken(ctx, token), &api.AvatarUploadURLRequest{
		Email:       email,
		ContentType: contentType,
	})
	if err != nil {
		return "", "", err
	}
	return resp.URL, resp.Key, nil
}

func (s *GRPCClient) AddMember(ctx context.Context, token, name, email, role string) (*api.Member, error) {
	resp, err := s.client.AddMember(withAccessToken(ctx, token), &api.AddMemberRequest{Name: name, Email: email, Role: role})
	if err != nil {
		return nil, err
	}
	return resp.Member, nil
}

func (s *GRPCClient) GetMember(ctx context.Context, token, name string) (*api.Member, error) {
	resp, err := s.client.GetMember(withAccessToken(ctx, token), &api.GetMemberRequest{Name: name})
	if err != nil {
		return nil, err
	}
	return resp.Member, nil
}

func (s *GRPCClient) ListMembers(ctx context.Context, token string) ([]*api.Member, error) {
	resp, err := s.client.ListMembers(withAccessToken(ctx, token), &api.ListMembersRequest{})
	if err != nil {
		return nil, err
	}
	return resp.Members, nil
}

func (s *GRPCClient) RemoveMember(ctx context.Context, token, name string) error {
	_, err := s.client.RemoveMember(withAccessToken(ctx, token), &api.RemoveMemberRequest{Name: name})
	return err
}
