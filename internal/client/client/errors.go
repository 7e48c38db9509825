package client

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/planwise/internal/common"
)

var ErrUnavailable = errors.New("server unavailable")

var codeErrors = map[codes.Code]error{
	codes.NotFound:           common.ErrorNotFound,
	codes.AlreadyExists:      common.ErrorConflict,
	codes.Unauthenticated:    common.ErrorUnauthorized,
	codes.InvalidArgument:    common.ErrorBadRequest,
	codes.FailedPrecondition: common.ErrNoAnswerSet,
	codes.PermissionDenied:   common.ErrorForbidden,
	codes.Internal:           common.ErrorInternal,
	codes.Unavailable:        ErrUnavailable,
	codes.DeadlineExceeded:   ErrUnavailable,
}

// remoteError keeps the server's message for display while matching the
// sentinel with errors.Is.
type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.sentinel }

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	sentinel, known := codeErrors[st.Code()]
	if !known {
		return fmt.Errorf("rpc error: %w", err)
	}
	msg := st.Message()
	if msg == "" {
		msg = sentinel.Error()
	}
	return &remoteError{sentinel: sentinel, msg: msg}
}
