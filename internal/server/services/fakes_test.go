package services

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/revocations"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

func newSQLMockDB(t *testing.T) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	mock.ExpectClose()
	t.Cleanup(func() { _ = db.Close() })
	return db
}

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

type testClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

type countingHasher struct {
	inner    *auth.Hasher
	verifies atomic.Int32
}

func newCountingHasher() *countingHasher {
	return &countingHasher{inner: auth.NewHasher(bcrypt.MinCost)}
}

func (h *countingHasher) Hash(plain string) (string, error) { return h.inner.Hash(plain) }

func (h *countingHasher) Verify(plain, digest string) bool {
	h.verifies.Add(1)
	return h.inner.Verify(plain, digest)
}

// --- in-memory repositories ---

type memUsers struct {
	mu    sync.Mutex
	byID  map[string]*models.User
	err   error
	clash error // returned by Create even when lookups found nothing
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*models.User{}} }

func (r *memUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	if r.clash != nil {
		return nil, r.clash
	}
	for _, x := range r.byID {
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
	r.byID[c.ID] = &c
	out := c
	return &out, nil
}

func (r *memUsers) find(match func(*models.User) bool) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.byID {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Email == email })
}

func (r *memUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.Username == username })
}

func (r *memUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	return r.find(func(u *models.User) bool { return u.ID == id })
}

func (r *memUsers) delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

type memRevocations struct {
	mu      sync.Mutex
	records map[string]time.Time
	err     error
}

func newMemRevocations() *memRevocations {
	return &memRevocations{records: map[string]time.Time{}}
}

func (r *memRevocations) Record(_ context.Context, jti string, expiresAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	if _, ok := r.records[jti]; ok {
		return false, nil
	}
	r.records[jti] = expiresAt
	return true, nil
}

func (r *memRevocations) Exists(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	_, ok := r.records[jti]
	return ok, nil
}

func (r *memRevocations) Prune(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	var n int64
	for jti, exp := range r.records {
		if !exp.After(now) {
			delete(r.records, jti)
			n++
		}
	}
	return n, nil
}

func (r *memRevocations) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

type memTasks struct {
	mu    sync.Mutex
	byKey map[string]*models.Task
	err   error
}

func newMemTasks() *memTasks { return &memTasks{byKey: map[string]*models.Task{}} }

func (r *memTasks) Create(_ context.Context, t *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	c := *t
	c.CreatedAt, c.UpdatedAt = time.Now(), time.Now()
	r.byKey[c.ID] = &c
	out := c
	return &out, nil
}

func (r *memTasks) List(_ context.Context, userID string) ([]*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Task
	for _, t := range r.byKey {
		if t.UserID == userID {
			c := *t
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *memTasks) Get(_ context.Context, userID, id string) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.byKey[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (r *memTasks) Update(_ context.Context, userID, id string, upd models.TaskUpdate) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.byKey[id]
	if !ok || t.UserID != userID {
		return nil, common.ErrorNotFound
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

func (r *memTasks) Delete(_ context.Context, userID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	t, ok := r.byKey[id]
	if !ok || t.UserID != userID {
		return common.ErrorNotFound
	}
	delete(r.byKey, id)
	return nil
}

type fakeRepoManager struct {
	users       *memUsers
	revocations *memRevocations
	tasks       *memTasks
	// revocationsOutsideDB mimics the Redis backend.
	revocationsOutsideDB bool
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{users: newMemUsers(), revocations: newMemRevocations(), tasks: newMemTasks()}
}

func (m *fakeRepoManager) RevocationsUseDB() bool { return !m.revocationsOutsideDB }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Tasks(dbx.DBTX) tasks.Repository              { return m.tasks }
func (m *fakeRepoManager) Revocations(dbx.DBTX) revocations.Repository  { return m.revocations }
