package grpc

import (
	"context"
	"database/sql"
	"net"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	pb "github.com/dmitrijs2005/taskkeeper/internal/proto"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/taskkeeper/internal/server/services"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/emptypb"
)

// memStore backs all three repositories with maps.
type memStore struct {
	mu      sync.Mutex
	users   map[string]*models.User
	revoked map[string]time.Time
	tasks   map[string]*models.Task
}

func newMemStore() *memStore {
	return &memStore{users: map[string]*models.User{}, revoked: map[string]time.Time{}, tasks: map[string]*models.Task{}}
}

func (m *memStore) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *memStore) Users(dbx.DBTX) users.Repository              { return memUsers{m} }
func (m *memStore) Tasks(dbx.DBTX) tasks.Repository              { return memTasks{m} }
func (m *memStore) Revocations(dbx.DBTX) revocations.Repository  { return memRevocations{m} }
func (m *memStore) RevocationsUseDB() bool                       { return false }

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, x := range r.users {
		if x.Email == u.Email {
			return nil, common.ErrEmailTaken
		}
		if x.Username == u.Username {
			return nil, common.ErrUsernameTaken
		}
	}
	c := *u
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	r.users[c.ID] = &c
	out := c
	return &out, nil
}

func (r memUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

type memRevocations struct{ *memStore }

func (r memRevocations) Record(_ context.Context, jti string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.revoked[jti]; ok {
		return false, nil
	}
	r.revoked[jti] = expiresAt
	return true, nil
}

func (r memRevocations) Exists(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.revoked[jti]
	return ok, nil
}

func (r memRevocations) Prune(context.Context, time.Time) (int64, error) { return 0, nil }

type memTasks struct{ *memStore }

func (r memTasks) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := *t
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	r.tasks[c.ID] = &c
	out := c
	return &out, nil
}

func (r memTasks) List(_ context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r memTasks) owned(userID, id string) (*models.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	return t, nil
}

func (r memTasks) Get(_ context.Context, userID, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	c := *t
	return &c, nil
}

func (r memTasks) Update(_ context.Context, userID, id string, upd models.TaskUpdate) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, err := r.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if upd.Title != nil {
		t.Title = *upd.Title
	}
	if upd.Description != nil {
		t.Description = *upd.Description
	}
	t.UpdatedAt = time.Now()
	c := *t
	return &c, nil
}

func (r memTasks) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := r.owned(userID, id); err != nil {
		return err
	}
	delete(r.tasks, id)
	return nil
}

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type harness struct {
	clock   *clock
	metrics *metrics.Metrics
	lis     *bufconn.Listener
}

func startHarness(t *testing.T) *harness {
	t.Helper()

	clk := &clock{t: time.Now().UTC()}
	codec, err := auth.NewCodec([]byte("e2e-secret"), "HS256", auth.WithClock(clk.Now))
	require.NoError(t, err)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := newMemStore()
	cfg := &config.Config{
		AccessTokenValidityDuration:  30 * time.Minute,
		RefreshTokenValidityDuration: 24 * time.Hour,
	}
	sessions, err := services.NewSessionService(db, store, codec, auth.NewHasher(bcrypt.MinCost), cfg)
	require.NoError(t, err)

	m := metrics.New()
	srv := NewGRPCServer("", logging.Nop{}, sessions, services.NewTaskService(db, store), m)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return &harness{clock: clk, metrics: m, lis: lis}
}

func (h *harness) dialer() grpc.DialOption {
	return grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return h.lis.DialContext(ctx)
	})
}

func (h *harness) dial(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient("passthrough:///bufnet", h.dialer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func registerAndLogin(t *testing.T, c *Client, email, username string) *pb.TokenResponse {
	t.Helper()
	ctx := context.Background()

	_, err := c.Register(ctx, &pb.RegisterRequest{
		Email:                email,
		Username:             username,
		FirstName:            "Test",
		Age:                  30,
		Password:             "password123",
		PasswordConfirmation: "password123",
	})
	require.NoError(t, err)

	tok, err := c.Login(ctx, email, "password123")
	require.NoError(t, err)
	return tok
}

func TestE2E_SessionLifecycle(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	pong, err := c.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OK", pong)

	tok := registerAndLogin(t, c, "alice@example.com", "alice")
	assert.Equal(t, "bearer", tok.TokenType)
	assert.NotEqual(t, tok.AccessToken, tok.RefreshToken)

	me, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.Equal(t, "alice", me.Username)

	require.NoError(t, c.LogoutToken(ctx, tok.AccessToken))

	// the revoked access token alone must no longer work
	c.SetTokens(tok.AccessToken, "")
	_, err = c.WhoAmI(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "unauthorized", status.Convert(err).Message())

	err = c.LogoutToken(ctx, tok.AccessToken)
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))

	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Logins.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Logouts.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Logouts.WithLabelValues("already_logged_out")))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Rejections.WithLabelValues("revoked")))
}

func TestE2E_LoginFailuresLookAlike(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	registerAndLogin(t, c, "bob@example.com", "bob")

	_, errWrong := c.Login(ctx, "bob@example.com", "wrong-password")
	_, errUnknown := c.Login(ctx, "nobody@example.com", "password123")

	assert.Equal(t, codes.Unauthenticated, status.Code(errWrong))
	assert.Equal(t, status.Convert(errWrong).Message(), status.Convert(errUnknown).Message())
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.Logins.WithLabelValues("invalid_credentials")))
}

func TestE2E_RegisterErrors(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	registerAndLogin(t, c, "carol@example.com", "carol")

	_, err := c.Register(ctx, &pb.RegisterRequest{
		Email: "carol@example.com", Username: "carol2", FirstName: "C",
		Password: "password123", PasswordConfirmation: "password123",
	})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Register(ctx, &pb.RegisterRequest{
		Email: "dave@example.com", Username: "dave", FirstName: "D",
		Password: "password123", PasswordConfirmation: "different1",
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestE2E_ProtectedMethodsNeedToken(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	_, err := c.WhoAmI(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = c.ListTasks(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	c.SetTokens("not-a-jwt", "")
	_, err = c.CreateTask(ctx, "x", "")
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestE2E_RefreshTokenCannotCallProtectedMethods(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	tok := registerAndLogin(t, c, "erin@example.com", "erin")

	c.SetTokens(tok.RefreshToken, "")
	_, err := c.WhoAmI(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Rejections.WithLabelValues("wrong_type")))
}

func TestE2E_ClientRefreshesExpiredAccessToken(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	tok := registerAndLogin(t, c, "frank@example.com", "frank")

	h.clock.Advance(31 * time.Minute)

	me, err := c.WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "frank", me.Username)

	access, refresh := c.Tokens()
	assert.NotEqual(t, tok.AccessToken, access)
	assert.Equal(t, tok.RefreshToken, refresh)
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Rejections.WithLabelValues("expired")))
}

func TestE2E_LogoutRevokesBothTokens(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	tok := registerAndLogin(t, c, "gina@example.com", "gina")
	require.NoError(t, c.Logout(ctx))

	access, refresh := c.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	c.SetTokens(tok.AccessToken, tok.RefreshToken)
	_, err := c.WhoAmI(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	err = c.Refresh(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestE2E_TasksAreScopedToOwner(t *testing.T) {
	h := startHarness(t)
	ctx := context.Background()

	alice := h.dial(t)
	bob := h.dial(t)
	registerAndLogin(t, alice, "alice@example.com", "alice")
	registerAndLogin(t, bob, "bob@example.com", "bob")

	created, err := alice.CreateTask(ctx, "buy milk", "2 litres")
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)

	_, err = alice.CreateTask(ctx, "", "")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	list, err := alice.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "buy milk", list[0].Title)

	list, err = bob.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = bob.GetTask(ctx, created.Id)
	assert.Equal(t, codes.NotFound, status.Code(err))
	assert.Equal(t, codes.NotFound, status.Code(bob.DeleteTask(ctx, created.Id)))

	title := "buy oat milk"
	updated, err := alice.UpdateTask(ctx, &pb.UpdateTaskRequest{Id: created.Id, Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, "2 litres", updated.Description)

	require.NoError(t, alice.DeleteTask(ctx, created.Id))
	_, err = alice.GetTask(ctx, created.Id)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestE2E_GeneratedClientInteroperates(t *testing.T) {
	h := startHarness(t)
	ctx := context.Background()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithTransportCredentials(insecure.NewCredentials()), h.dialer())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	api := pb.NewTaskKeeperClient(conn)

	pong, err := api.Ping(ctx, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "OK", pong.GetStatus())

	_, err = api.Register(ctx, &pb.RegisterRequest{
		Email: "hana@example.com", Username: "hana", FirstName: "Hana", Age: 28,
		Password: "password123", PasswordConfirmation: "password123",
	})
	require.NoError(t, err)

	tok, err := api.Login(ctx, &pb.LoginRequest{Email: "hana@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.True(t, tok.GetAccessExpiresAt().AsTime().After(h.clock.Now()))

	_, err = api.WhoAmI(ctx, &emptypb.Empty{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok.GetAccessToken())
	me, err := api.WhoAmI(authed, &emptypb.Empty{})
	require.NoError(t, err)
	assert.Equal(t, "hana", me.GetUsername())
	assert.Equal(t, int32(28), me.GetAge())
}

func TestE2E_LogoutWithRevokedAccessTokenStillRevokesRefresh(t *testing.T) {
	h := startHarness(t)
	c := h.dial(t)
	ctx := context.Background()

	tok := registerAndLogin(t, c, "ivan@example.com", "ivan")
	require.NoError(t, c.LogoutToken(ctx, tok.AccessToken))

	require.NoError(t, c.Logout(ctx))

	access, refresh := c.Tokens()
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	c.SetTokens("", tok.RefreshToken)
	err := c.Refresh(ctx)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}
