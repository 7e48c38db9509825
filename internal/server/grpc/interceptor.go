package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/planwise/internal/api"
	"github.com/dmitrijs2005/planwise/internal/common"
	"github.com/dmitrijs2005/planwise/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// publicMethods need no session token.
var publicMethods = map[string]bool{
	api.MethodPing:                 true,
	api.MethodHasPassword:          true,
	api.MethodCreatePassword:       true,
	api.MethodMemberLogin:          true,
	api.MethodVerifySecurityAnswer: true,
	api.MethodResetPassword:        true,
	api.MethodAdminSignup:          true,
	api.MethodAdminLogin:           true,
}

// memberMethods accept member tokens as well as admin tokens. Every other
// non-public method is admin only.
var memberMethods = map[string]bool{
	api.MethodGetMember: true,
}

func claimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(*auth.Claims)
	return c, ok
}

func accessTokenFromContext(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	accessToken := accessTokenFromContext(ctx)
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	claims, err := auth.ParseToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	switch claims.Role {
	case common.RoleAdmin:
	case common.RoleMember:
		if !memberMethods[info.FullMethod] {
			return nil, status.Error(codes.PermissionDenied, "admin role required")
		}
	default:
		return nil, status.Error(codes.PermissionDenied, "unknown role")
	}

	if err := s.checkIdentity(ctx, claims); err != nil {
		return nil, err
	}

	ctx = context.WithValue(ctx, claimsKey, claims)

	return handler(ctx, req)
}

// checkIdentity rejects tokens whose identity was deleted, or deleted and
// created again under the same key, after the token was issued.
func (s *GRPCServer) checkIdentity(ctx context.Context, c *auth.Claims) error {
	var (
		id  string
		err error
	)
	if c.Role == common.RoleAdmin {
		id, err = s.admins.IdentityID(ctx, c.Subject)
	} else {
		id, err = s.roster.IdentityID(ctx, c.Subject)
	}

	switch {
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.Unauthenticated, "session revoked")
	case err != nil:
		return s.statusError(ctx, err)
	case c.IdentityID == "" || c.IdentityID != id:
		return status.Error(codes.Unauthenticated, "session revoked")
	}
	return nil
}

// requireSelf allows the call only if the session belongs to key.
func requireSelf(ctx context.Context, key string) error {
	c, ok := claimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "missing token")
	}
	if c.Subject != key {
		return status.Error(codes.PermissionDenied, "permission denied")
	}
	return nil
}
