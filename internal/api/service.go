package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "planwise.v1.PlanWise"

// Full method names, as seen by interceptors.
const (
	MethodPing                 = "/" + ServiceName + "/Ping"
	MethodHasPassword          = "/" + ServiceName + "/HasPassword"
	MethodCreatePassword       = "/" + ServiceName + "/CreatePassword"
	MethodMemberLogin          = "/" + ServiceName + "/MemberLogin"
	MethodVerifySecurityAnswer = "/" + ServiceName + "/VerifySecurityAnswer"
	MethodResetPassword        = "/" + ServiceName + "/ResetPassword"
	MethodAdminSignup          = "/" + ServiceName + "/AdminSignup"
	MethodAdminLogin           = "/" + ServiceName + "/AdminLogin"
	MethodGetAdmin             = "/" + ServiceName + "/GetAdmin"
	MethodUpdateAdmin          = "/" + ServiceName + "/UpdateAdmin"
	MethodChangeAdminPassword  = "/" + ServiceName + "/ChangeAdminPassword"
	MethodDeleteAdmin          = "/" + ServiceName + "/DeleteAdmin"
	MethodAvatarUploadURL      = "/" + ServiceName + "/AvatarUploadURL"
	MethodAddMember            = "/" + ServiceName + "/AddMember"
	MethodGetMember            = "/" + ServiceName + "/GetMember"
	MethodListMembers          = "/" + ServiceName + "/ListMembers"
	MethodRemoveMember         = "/" + ServiceName + "/RemoveMember"
)

// PlanWiseServer is the server API for the PlanWise service.
// Implementations should embed UnimplementedPlanWiseServer.
type PlanWiseServer interface {
	Ping(context.Context, *PingRequest) (*PingResponse, error)

	HasPassword(context.Context, *HasPasswordRequest) (*HasPasswordResponse, error)
	CreatePassword(context.Context, *CreatePasswordRequest) (*MessageResponse, error)
	MemberLogin(context.Context, *MemberLoginRequest) (*MemberLoginResponse, error)
	VerifySecurityAnswer(context.Context, *VerifySecurityAnswerRequest) (*VerifySecurityAnswerResponse, error)
	ResetPassword(context.Context, *ResetPasswordRequest) (*MessageResponse, error)

	AdminSignup(context.Context, *AdminSignupRequest) (*MessageResponse, error)
	AdminLogin(context.Context, *AdminLoginRequest) (*AdminLoginResponse, error)
	GetAdmin(context.Context, *GetAdminRequest) (*AdminResponse, error)
	UpdateAdmin(context.Context, *UpdateAdminRequest) (*AdminResponse, error)
	ChangeAdminPassword(context.Context, *ChangeAdminPasswordRequest) (*MessageResponse, error)
	DeleteAdmin(context.Context, *DeleteAdminRequest) (*MessageResponse, error)
	AvatarUploadURL(context.Context, *AvatarUploadURLRequest) (*AvatarUploadURLResponse, error)

	AddMember(context.Context, *AddMemberRequest) (*MemberResponse, error)
	GetMember(context.Context, *GetMemberRequest) (*MemberResponse, error)
	ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error)
	RemoveMember(context.Context, *RemoveMemberRequest) (*MessageResponse, error)

	mustEmbedUnimplementedPlanWiseServer()
}

// UnimplementedPlanWiseServer answers every method with codes.Unimplemented.
type UnimplementedPlanWiseServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedPlanWiseServer) Ping(context.Context, *PingRequest) (*PingResponse, error) {
	return nil, unimplemented("Ping")
}
func (UnimplementedPlanWiseServer) HasPassword(context.Context, *HasPasswordRequest) (*HasPasswordResponse, error) {
	return nil, unimplemented("HasPassword")
}
func (UnimplementedPlanWiseServer) CreatePassword(context.Context, *CreatePasswordRequest) (*MessageResponse, error) {
	return nil, unimplemented("CreatePassword")
}
func (UnimplementedPlanWiseServer) MemberLogin(context.Context, *MemberLoginRequest) (*MemberLoginResponse, error) {
	return nil, unimplemented("MemberLogin")
}
func (UnimplementedPlanWiseServer) VerifySecurityAnswer(context.Context, *VerifySecurityAnswerRequest) (*VerifySecurityAnswerResponse, error) {
	return nil, unimplemented("VerifySecurityAnswer")
}
func (UnimplementedPlanWiseServer) ResetPassword(context.Context, *ResetPasswordRequest) (*MessageResponse, error) {
	return nil, unimplemented("ResetPassword")
}
func (UnimplementedPlanWiseServer) AdminSignup(context.Context, *AdminSignupRequest) (*MessageResponse, error) {
	return nil, unimplemented("AdminSignup")
}
func (UnimplementedPlanWiseServer) AdminLogin(context.Context, *AdminLoginRequest) (*AdminLoginResponse, error) {
	return nil, unimplemented("AdminLogin")
}
func (UnimplementedPlanWiseServer) GetAdmin(context.Context, *GetAdminRequest) (*AdminResponse, error) {
	return nil, unimplemented("GetAdmin")
}
func (UnimplementedPlanWiseServer) UpdateAdmin(context.Context, *UpdateAdminRequest) (*AdminResponse, error) {
	return nil, unimplemented("UpdateAdmin")
}
func (UnimplementedPlanWiseServer) ChangeAdminPassword(context.Context, *ChangeAdminPasswordRequest) (*MessageResponse, error) {
	return nil, unimplemented("ChangeAdminPassword")
}
func (UnimplementedPlanWiseServer) DeleteAdmin(context.Context, *DeleteAdminRequest) (*MessageResponse, error) {
	return nil, unimplemented("DeleteAdmin")
}
func (UnimplementedPlanWiseServer) AvatarUploadURL(context.Context, *AvatarUploadURLRequest) (*AvatarUploadURLResponse, error) {
	return nil, unimplemented("AvatarUploadURL")
}
func (UnimplementedPlanWiseServer) AddMember(context.Context, *AddMemberRequest) (*MemberResponse, error) {
	return nil, unimplemented("AddMember")
}
func (UnimplementedPlanWiseServer) GetMember(context.Context, *GetMemberRequest) (*MemberResponse, error) {
	return nil, unimplemented("GetMember")
}
func (UnimplementedPlanWiseServer) ListMembers(context.Context, *ListMembersRequest) (*ListMembersResponse, error) {
	return nil, unimplemented("ListMembers")
}
func (UnimplementedPlanWiseServer) RemoveMember(context.Context, *RemoveMemberRequest) (*MessageResponse, error) {
	return nil, unimplemented("RemoveMember")
}
func (UnimplementedPlanWiseServer) mustEmbedUnimplementedPlanWiseServer() {}

// unaryHandler adapts a typed server method to a grpc.MethodHandler,
// running the configured interceptor chain around it.
func unaryHandler[Req, Resp any](fullMethod string, call func(PlanWiseServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PlanWiseServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(PlanWiseServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PlanWiseServiceDesc describes the PlanWise service for grpc.Server.
var PlanWiseServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlanWiseServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Ping", Handler: unaryHandler(MethodPing, PlanWiseServer.Ping)},
		{MethodName: "HasPassword", Handler: unaryHandler(MethodHasPassword, PlanWiseServer.HasPassword)},
		{MethodName: "CreatePassword", Handler: unaryHandler(MethodCreatePassword, PlanWiseServer.CreatePassword)},
		{MethodName: "MemberLogin", Handler: unaryHandler(MethodMemberLogin, PlanWiseServer.MemberLogin)},
		{MethodName: "VerifySecurityAnswer", Handler: unaryHandler(MethodVerifySecurityAnswer, PlanWiseServer.VerifySecurityAnswer)},
		{MethodName: "ResetPassword", Handler: unaryHandler(MethodResetPassword, PlanWiseServer.ResetPassword)},
		{MethodName: "AdminSignup", Handler: unaryHandler(MethodAdminSignup, PlanWiseServer.AdminSignup)},
		{MethodName: "AdminLogin", Handler: unaryHandler(MethodAdminLogin, PlanWiseServer.AdminLogin)},
		{MethodName: "GetAdmin", Handler: unaryHandler(MethodGetAdmin, PlanWiseServer.GetAdmin)},
		{MethodName: "UpdateAdmin", Handler: unaryHandler(MethodUpdateAdmin, PlanWiseServer.UpdateAdmin)},
		{MethodName: "ChangeAdminPassword", Handler: unaryHandler(MethodChangeAdminPassword, PlanWiseServer.ChangeAdminPassword)},
		{MethodName: "DeleteAdmin", Handler: unaryHandler(MethodDeleteAdmin, PlanWiseServer.DeleteAdmin)},
		{MethodName: "AvatarUploadURL", Handler: unaryHandler(MethodAvatarUploadURL, PlanWiseServer.AvatarUploadURL)},
		{MethodName: "AddMember", Handler: unaryHandler(MethodAddMember, PlanWiseServer.AddMember)},
		{MethodName: "GetMember", Handler: unaryHandler(MethodGetMember, PlanWiseServer.GetMember)},
		{MethodName: "ListMembers", Handler: unaryHandler(MethodListMembers, PlanWiseServer.ListMembers)},
		{MethodName: "RemoveMember", Handler: unaryHandler(MethodRemoveMember, PlanWiseServer.RemoveMember)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "planwise/v1",
}

func RegisterPlanWiseServer(s grpc.ServiceRegistrar, srv PlanWiseServer) {
	s.RegisterService(&PlanWiseServiceDesc, srv)
}
