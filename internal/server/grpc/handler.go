package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	pb "github.com/dmitrijs2005/taskkeeper/internal/proto"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.ProfileResponse, error) {
	s.logger.Info(ctx, "Registration request")

	user, err := s.sessions.Register(ctx, models.Registration{
		Email:                req.Email,
		Username:             req.Username,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Age:                  int(req.Age),
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_Register_FullMethodName, err)
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID)
	return toProfile(user), nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.TokenResponse, error) {
	pair, err := s.sessions.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			s.metrics.Logins.WithLabelValues("invalid_credentials").Inc()
		default:
			s.metrics.Logins.WithLabelValues("error").Inc()
		}
		return nil, s.statusError(ctx, pb.TaskKeeper_Login_FullMethodName, err)
	}

	s.metrics.Logins.WithLabelValues("success").Inc()
	return toTokenResponse(pair), nil
}

func (s *GRPCServer) Refresh(ctx context.Context, req *pb.RefreshRequest) (*pb.TokenResponse, error) {
	if req.RefreshToken == "" {
		return nil, status.Error(codes.InvalidArgument, "refresh token is required")
	}

	pair, err := s.sessions.Refresh(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_Refresh_FullMethodName, err)
	}
	return toTokenResponse(pair), nil
}

func (s *GRPCServer) Logout(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	token, ok := tokenFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	if err := s.sessions.Logout(ctx, token); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyLoggedOut):
			s.metrics.Logouts.WithLabelValues("already_logged_out").Inc()
		case errors.Is(err, common.ErrorUnauthorized):
			s.metrics.Logouts.WithLabelValues("rejected").Inc()
		default:
			s.metrics.Logouts.WithLabelValues("error").Inc()
		}
		return nil, s.statusError(ctx, pb.TaskKeeper_Logout_FullMethodName, err)
	}

	s.metrics.Logouts.WithLabelValues("ok").Inc()
	return &emptypb.Empty{}, nil
}

func (s *GRPCServer) WhoAmI(ctx context.Context, _ *emptypb.Empty) (*pb.ProfileResponse, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.sessions.Profile(ctx, identity)
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_WhoAmI_FullMethodName, err)
	}
	return toProfile(user), nil
}

func (s *GRPCServer) CreateTask(ctx context.Context, req *pb.CreateTaskRequest) (*pb.TaskResponse, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Create(ctx, identity, req.Title, req.Description)
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_CreateTask_FullMethodName, err)
	}
	return toTaskResponse(task), nil
}

func (s *GRPCServer) ListTasks(ctx context.Context, _ *emptypb.Empty) (*pb.ListTasksResponse, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	list, err := s.tasks.List(ctx, identity)
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_ListTasks_FullMethodName, err)
	}

	resp := &pb.ListTasksResponse{Tasks: make([]*pb.TaskResponse, 0, len(list))}
	for _, t := range list {
		resp.Tasks = append(resp.Tasks, toTaskResponse(t))
	}
	return resp, nil
}

func (s *GRPCServer) GetTask(ctx context.Context, req *pb.TaskIDRequest) (*pb.TaskResponse, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Get(ctx, identity, req.Id)
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_GetTask_FullMethodName, err)
	}
	return toTaskResponse(task), nil
}

func (s *GRPCServer) UpdateTask(ctx context.Context, req *pb.UpdateTaskRequest) (*pb.TaskResponse, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.Update(ctx, identity, req.Id, models.TaskUpdate{Title: req.Title, Description: req.Description})
	if err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_UpdateTask_FullMethodName, err)
	}
	return toTaskResponse(task), nil
}

func (s *GRPCServer) DeleteTask(ctx context.Context, req *pb.TaskIDRequest) (*emptypb.Empty, error) {
	identity, err := mustIdentity(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Delete(ctx, identity, req.Id); err != nil {
		return nil, s.statusError(ctx, pb.TaskKeeper_DeleteTask_FullMethodName, err)
	}
	return &emptypb.Empty{}, nil
}

// --- helpers below ---

func mustIdentity(ctx context.Context) (models.Identity, error) {
	identity, ok := identityFromContext(ctx)
	if !ok {
		return models.Identity{}, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return identity, nil
}

func toProfile(u *models.User) *pb.ProfileResponse {
	return &pb.ProfileResponse{
		UserId:    u.ID,
		Email:     u.Email,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Age:       int32(u.Age),
	}
}

func toTokenResponse(p *models.TokenPair) *pb.TokenResponse {
	return &pb.TokenResponse{
		AccessToken:      p.AccessToken,
		RefreshToken:     p.RefreshToken,
		TokenType:        "bearer",
		AccessExpiresAt:  timestamppb.New(p.AccessExpiresAt),
		RefreshExpiresAt: timestamppb.New(p.RefreshExpiresAt),
	}
}

func toTaskResponse(t *models.Task) *pb.TaskResponse {
	return &pb.TaskResponse{
		Id:          t.ID,
		UserId:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		CreatedAt:   timestamppb.New(t.CreatedAt),
		UpdatedAt:   timestamppb.New(t.UpdatedAt),
	}
}
