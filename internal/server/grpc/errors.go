package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusError maps a service error onto a gRPC status. Unauthorized
// responses carry no detail; the cause is only logged and counted.
func (s *GRPCServer) statusError(ctx context.Context, method string, err error) error {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		reason := rejectionReason(err)
		s.metrics.Rejections.WithLabelValues(reason).Inc()
		s.logger.Warn(ctx, "token rejected", "method", method, "reason", reason, "cause", err.Error())
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid email or password")
	case errors.Is(err, common.ErrAlreadyLoggedOut):
		return status.Error(codes.FailedPrecondition, "already logged out")
	case errors.Is(err, common.ErrEmailTaken):
		return status.Error(codes.AlreadyExists, "user with this email already exists")
	case errors.Is(err, common.ErrUsernameTaken):
		return status.Error(codes.AlreadyExists, "username is already taken")
	case errors.Is(err, common.ErrConflict):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrValidation):
		return status.Error(codes.InvalidArgument, validationMessage(err))
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		s.logger.Error(ctx, "request failed", "method", method, "error", err.Error())
		return status.Error(codes.Internal, "internal error")
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, errMissingToken):
		return "missing"
	case errors.Is(err, common.ErrTokenExpired):
		return "expired"
	case errors.Is(err, common.ErrInvalidSignature):
		return "signature"
	case errors.Is(err, common.ErrTokenBlacklisted):
		return "revoked"
	case errors.Is(err, common.ErrWrongTokenType):
		return "wrong_type"
	case errors.Is(err, common.ErrorNotFound):
		return "unknown_subject"
	default:
		return "malformed"
	}
}

// validationMessage strips the sentinel prefix: "validation error: x" -> "x".
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, common.ErrValidation.Error()+": "); ok {
		return rest
	}
	return msg
}
