package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/planwise/internal/common"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
	msg  string
}{
	{common.ErrorNotFound, codes.NotFound, "not found"},
	{common.ErrorConflict, codes.AlreadyExists, "already exists"},
	{common.ErrorUnauthorized, codes.Unauthenticated, "invalid credentials"},
	{common.ErrorBadRequest, codes.InvalidArgument, ""},
	{common.ErrNoAnswerSet, codes.FailedPrecondition, "no security answer set"},
	{common.ErrorForbidden, codes.PermissionDenied, "permission denied"},
}

// statusError converts a service error into a gRPC status. Unclassified
// errors are logged and reported as a generic internal error.
func (s *GRPCServer) statusError(ctx context.Context, err error) error {
	method, _ := grpc.Method(ctx)

	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			msg := e.msg
			if msg == "" {
				// validation messages are safe to return
				msg = err.Error()
			}
			s.logger.Info(ctx, "request rejected", "method", method, "code", e.code.String())
			return status.Error(e.code, msg)
		}
	}

	s.logger.Error(ctx, "request failed", "method", method, "code", codes.Internal.String(), "error", err)
	return status.Error(codes.Internal, "internal error")
}
