package grpc

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	pb "github.com/dmitrijs2005/taskkeeper/internal/proto"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	identityKey ctxKey = "identity"
	tokenKey    ctxKey = "token"
)

var errMissingToken = errors.New("missing bearer token")

// publicMethods need no token at all.
var publicMethods = map[string]bool{
	pb.TaskKeeper_Ping_FullMethodName:     true,
	pb.TaskKeeper_Register_FullMethodName: true,
	pb.TaskKeeper_Login_FullMethodName:    true,
	pb.TaskKeeper_Refresh_FullMethodName:  true,
}

// authInterceptor requires a bearer token on every non-public method.
// Logout only needs the raw token; all other methods get a validated
// identity in the context.
func (s *GRPCServer) authInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	token, err := bearerToken(ctx)
	if err != nil {
		return nil, s.statusError(ctx, info.FullMethod, common.Unauthorized(err))
	}

	if info.FullMethod == pb.TaskKeeper_Logout_FullMethodName {
		return handler(context.WithValue(ctx, tokenKey, token), req)
	}

	identity, err := s.sessions.Validate(ctx, token)
	if err != nil {
		return nil, s.statusError(ctx, info.FullMethod, err)
	}

	return handler(context.WithValue(ctx, identityKey, identity), req)
}

// metricsInterceptor counts every RPC by method and resulting code.
func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	resp, err := handler(ctx, req)
	s.metrics.RPCs.WithLabelValues(info.FullMethod, status.Code(err).String()).Inc()
	return resp, err
}

// bearerToken extracts the token from "authorization: Bearer <token>".
func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", errMissingToken
	}
	values := md.Get(common.AuthorizationHeaderName)
	if len(values) == 0 {
		return "", errMissingToken
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(values[0]), " ")
	if !ok || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", errMissingToken
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingToken
	}
	return token, nil
}

func identityFromContext(ctx context.Context) (models.Identity, bool) {
	id, ok := ctx.Value(identityKey).(models.Identity)
	return id, ok
}

func tokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(tokenKey).(string)
	return t, ok
}
