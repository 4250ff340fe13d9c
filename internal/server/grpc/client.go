package grpc

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	pb "github.com/dmitrijs2005/taskkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

type clientCtxKey struct{}

// Client is a typed TaskKeeper client. It keeps the tokens from the last
// Login, attaches the access token to protected calls and, when a call is
// rejected as unauthenticated, refreshes the access token once and retries.
type Client struct {
	conn *grpc.ClientConn
	api  pb.TaskKeeperClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
}

// NewClient connects to target. Extra options are appended to the defaults
// (plaintext transport, token interceptor).
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	c := &Client{}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(target, dialOpts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewTaskKeeperClient(conn)
	return c, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// Tokens returns the currently held access and refresh tokens.
func (c *Client) Tokens() (access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.accessToken, c.refreshToken
}

// SetTokens replaces the held tokens.
func (c *Client) SetTokens(access, refresh string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken, c.refreshToken = access, refresh
}

func withBearer(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)
	return metadata.NewOutgoingContext(ctx, md)
}

func (c *Client) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if publicMethods[method] {
		return invoker(ctx, method, req, reply, cc, opts...)
	}

	if explicit, ok := ctx.Value(clientCtxKey{}).(string); ok {
		return invoker(withBearer(ctx, explicit), method, req, reply, cc, opts...)
	}

	access, refresh := c.Tokens()
	err := invoker(withBearer(ctx, access), method, req, reply, cc, opts...)
	if status.Code(err) != codes.Unauthenticated || refresh == "" {
		return err
	}

	// access token may have expired; try once with a fresh one
	if rerr := c.Refresh(ctx); rerr != nil {
		return err
	}
	access, _ = c.Tokens()
	return invoker(withBearer(ctx, access), method, req, reply, cc, opts...)
}

func (c *Client) Ping(ctx context.Context) (string, error) {
	resp, err := c.api.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return "", err
	}
	return resp.Status, nil
}

func (c *Client) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.ProfileResponse, error) {
	return c.api.Register(ctx, req)
}

// Login authenticates and keeps the returned tokens for later calls.
func (c *Client) Login(ctx context.Context, email, password string) (*pb.TokenResponse, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return resp, nil
}

// Refresh replaces the held access token using the held refresh token.
func (c *Client) Refresh(ctx context.Context) error {
	_, refresh := c.Tokens()
	if refresh == "" {
		return status.Error(codes.Unauthenticated, "no refresh token")
	}

	resp, err := c.api.Refresh(ctx, &pb.RefreshRequest{RefreshToken: refresh})
	if err != nil {
		return err
	}
	c.SetTokens(resp.AccessToken, resp.RefreshToken)
	return nil
}

// Logout revokes the held access and refresh tokens and forgets them. A
// token that is already revoked or no longer accepted counts as logged out.
func (c *Client) Logout(ctx context.Context) error {
	access, refresh := c.Tokens()
	for _, token := range []string{access, refresh} {
		if token == "" {
			continue
		}
		err := c.LogoutToken(ctx, token)
		switch status.Code(err) {
		case codes.OK, codes.FailedPrecondition, codes.Unauthenticated:
		default:
			return err
		}
	}
	c.SetTokens("", "")
	return nil
}

// LogoutToken revokes one specific token.
func (c *Client) LogoutToken(ctx context.Context, token string) error {
	ctx = context.WithValue(ctx, clientCtxKey{}, token)
	_, err := c.api.Logout(ctx, &emptypb.Empty{})
	return err
}

func (c *Client) WhoAmI(ctx context.Context) (*pb.ProfileResponse, error) {
	return c.api.WhoAmI(ctx, &emptypb.Empty{})
}

func (c *Client) CreateTask(ctx context.Context, title, description string) (*pb.TaskResponse, error) {
	return c.api.CreateTask(ctx, &pb.CreateTaskRequest{Title: title, Description: description})
}

func (c *Client) ListTasks(ctx context.Context) ([]*pb.TaskResponse, error) {
	resp, err := c.api.ListTasks(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, err
	}
	return resp.Tasks, nil
}

func (c *Client) GetTask(ctx context.Context, id string) (*pb.TaskResponse, error) {
	return c.api.GetTask(ctx, &pb.TaskIDRequest{Id: id})
}

func (c *Client) UpdateTask(ctx context.Context, req *pb.UpdateTaskRequest) (*pb.TaskResponse, error) {
	return c.api.UpdateTask(ctx, req)
}

func (c *Client) DeleteTask(ctx context.Context, id string) error {
	_, err := c.api.DeleteTask(ctx, &pb.TaskIDRequest{Id: id})
	return err
}
