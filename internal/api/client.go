package api

import (
	"context"

	"google.golang.org/grpc"
)

// PlanWiseClient is the client API for the PlanWise service.
type PlanWiseClient interface {
	Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error)

	HasPassword(ctx context.Context, in *HasPasswordRequest, opts ...grpc.CallOption) (*HasPasswordResponse, error)
	CreatePassword(ctx context.Context, in *CreatePasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	MemberLogin(ctx context.Context, in *MemberLoginRequest, opts ...grpc.CallOption) (*MemberLoginResponse, error)
	VerifySecurityAnswer(ctx context.Context, in *VerifySecurityAnswerRequest, opts ...grpc.CallOption) (*VerifySecurityAnswerResponse, error)
	ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error)

	AdminSignup(ctx context.Context, in *AdminSignupRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	AdminLogin(ctx context.Context, in *AdminLoginRequest, opts ...grpc.CallOption) (*AdminLoginResponse, error)
	GetAdmin(ctx context.Context, in *GetAdminRequest, opts ...grpc.CallOption) (*AdminResponse, error)
	UpdateAdmin(ctx context.Context, in *UpdateAdminRequest, opts ...grpc.CallOption) (*AdminResponse, error)
	ChangeAdminPassword(ctx context.Context, in *ChangeAdminPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	DeleteAdmin(ctx context.Context, in *DeleteAdminRequest, opts ...grpc.CallOption) (*MessageResponse, error)
	AvatarUploadURL(ctx context.Context, in *AvatarUploadURLRequest, opts ...grpc.CallOption) (*AvatarUploadURLResponse, error)

	AddMember(ctx context.Context, in *AddMemberRequest, opts ...grpc.CallOption) (*MemberResponse, error)
	GetMember(ctx context.Context, in *GetMemberRequest, opts ...grpc.CallOption) (*MemberResponse, error)
	ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error)
	RemoveMember(ctx context.Context, in *RemoveMemberRequest, opts ...grpc.CallOption) (*MessageResponse, error)
}

type planWiseClient struct {
	cc grpc.ClientConnInterface
}

func NewPlanWiseClient(cc grpc.ClientConnInterface) PlanWiseClient {
	return &planWiseClient{cc: cc}
}

// invoke performs a unary call with the JSON content-subtype.
func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *planWiseClient) Ping(ctx context.Context, in *PingRequest, opts ...grpc.CallOption) (*PingResponse, error) {
	return invoke[PingResponse](ctx, c.cc, MethodPing, in, opts)
}

func (c *planWiseClient) HasPassword(ctx context.Context, in *HasPasswordRequest, opts ...grpc.CallOption) (*HasPasswordResponse, error) {
	return invoke[HasPasswordResponse](ctx, c.cc, MethodHasPassword, in, opts)
}

func (c *planWiseClient) CreatePassword(ctx context.Context, in *CreatePasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodCreatePassword, in, opts)
}

func (c *planWiseClient) MemberLogin(ctx context.Context, in *MemberLoginRequest, opts ...grpc.CallOption) (*MemberLoginResponse, error) {
	return invoke[MemberLoginResponse](ctx, c.cc, MethodMemberLogin, in, opts)
}

func (c *planWiseClient) VerifySecurityAnswer(ctx context.Context, in *VerifySecurityAnswerRequest, opts ...grpc.CallOption) (*VerifySecurityAnswerResponse, error) {
	return invoke[VerifySecurityAnswerResponse](ctx, c.cc, MethodVerifySecurityAnswer, in, opts)
}

func (c *planWiseClient) ResetPassword(ctx context.Context, in *ResetPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodResetPassword, in, opts)
}

func (c *planWiseClient) AdminSignup(ctx context.Context, in *AdminSignupRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodAdminSignup, in, opts)
}

func (c *planWiseClient) AdminLogin(ctx context.Context, in *AdminLoginRequest, opts ...grpc.CallOption) (*AdminLoginResponse, error) {
	return invoke[AdminLoginResponse](ctx, c.cc, MethodAdminLogin, in, opts)
}

func (c *planWiseClient) GetAdmin(ctx context.Context, in *GetAdminRequest, opts ...grpc.CallOption) (*AdminResponse, error) {
	return invoke[AdminResponse](ctx, c.cc, MethodGetAdmin, in, opts)
}

func (c *planWiseClient) UpdateAdmin(ctx context.Context, in *UpdateAdminRequest, opts ...grpc.CallOption) (*AdminResponse, error) {
	return invoke[AdminResponse](ctx, c.cc, MethodUpdateAdmin, in, opts)
}

func (c *planWiseClient) ChangeAdminPassword(ctx context.Context, in *ChangeAdminPasswordRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodChangeAdminPassword, in, opts)
}

func (c *planWiseClient) DeleteAdmin(ctx context.Context, in *DeleteAdminRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodDeleteAdmin, in, opts)
}

func (c *planWiseClient) AvatarUploadURL(ctx context.Context, in *AvatarUploadURLRequest, opts ...grpc.CallOption) (*AvatarUploadURLResponse, error) {
	return invoke[AvatarUploadURLResponse](ctx, c.cc, MethodAvatarUploadURL, in, opts)
}

func (c *planWiseClient) AddMember(ctx context.Context, in *AddMemberRequest, opts ...grpc.CallOption) (*MemberResponse, error) {
	return invoke[MemberResponse](ctx, c.cc, MethodAddMember, in, opts)
}

func (c *planWiseClient) GetMember(ctx context.Context, in *GetMemberRequest, opts ...grpc.CallOption) (*MemberResponse, error) {
	return invoke[MemberResponse](ctx, c.cc, MethodGetMember, in, opts)
}

func (c *planWiseClient) ListMembers(ctx context.Context, in *ListMembersRequest, opts ...grpc.CallOption) (*ListMembersResponse, error) {
	return invoke[ListMembersResponse](ctx, c.cc, MethodListMembers, in, opts)
}

func (c *planWiseClient) RemoveMember(ctx context.Context, in *RemoveMemberRequest, opts ...grpc.CallOption) (*MessageResponse, error) {
	return invoke[MessageResponse](ctx, c.cc, MethodRemoveMember, in, opts)
}
