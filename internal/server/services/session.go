// Package services contains server-side business logic. This file implements
// SessionService: registration, credential login, token validation, refresh
// and logout-driven revocation.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/auth"
	"github.com/dmitrijs2005/taskkeeper/internal/server/config"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/revocations"
	"github.com/google/uuid"
)

const (
	minPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordLength = 72
)

// TokenCodec issues and verifies signed tokens.
type TokenCodec interface {
	Issue(subject, jti, tokenType string, ttl time.Duration) (string, *auth.Claims, error)
	Decode(token string) (*auth.Claims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, digest string) bool
}

// SessionService holds no per-session state: everything a request needs is
// in the token or in the stores. Each call runs its queries over one
// connection checked out with dbx.WithConn. A Redis revocation store is
// used without a connection.
type SessionService struct {
	db                           *sql.DB
	repomanager                  repomanager.RepositoryManager
	codec                        TokenCodec
	hasher                       PasswordHasher
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	dummyDigest                  string
}

// NewSessionService constructs a SessionService. It hashes a random password
// once so that logins for unknown emails cost one real verification.
func NewSessionService(db *sql.DB, m repomanager.RepositoryManager, codec TokenCodec, hasher PasswordHasher, cfg *config.Config) (*SessionService, error) {
	seed, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, err
	}
	dummy, err := hasher.Hash(seed)
	if err != nil {
		return nil, fmt.Errorf("dummy digest: %w", err)
	}

	return &SessionService{
		db:                           db,
		repomanager:                  m,
		codec:                        codec,
		hasher:                       hasher,
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		dummyDigest:                  dummy,
	}, nil
}

// Register validates reg and creates the account. Duplicates yield
// common.ErrEmailTaken or common.ErrUsernameTaken, email checked first.
func (s *SessionService) Register(ctx context.Context, reg models.Registration) (*models.User, error) {
	reg.Email = normalizeEmail(reg.Email)
	reg.Username = strings.TrimSpace(reg.Username)
	reg.FirstName = strings.TrimSpace(reg.FirstName)
	reg.LastName = strings.TrimSpace(reg.LastName)

	if err := validateRegistration(reg); err != nil {
		return nil, err
	}

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		repo := s.repomanager.Users(conn)
		if err := ensureAbsent(repo.FindByEmail(ctx, reg.Email)); err != nil {
			return conflictOr(err, common.ErrEmailTaken)
		}
		if err := ensureAbsent(repo.FindByUsername(ctx, reg.Username)); err != nil {
			return conflictOr(err, common.ErrUsernameTaken)
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	digest, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, internal(fmt.Errorf("hash password: %w", err))
	}

	var created *models.User
	err = dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		created, err = s.repomanager.Users(conn).Create(ctx, &models.User{
			Email:        reg.Email,
			Username:     reg.Username,
			FirstName:    reg.FirstName,
			LastName:     reg.LastName,
			Age:          reg.Age,
			PasswordHash: digest,
		})
		return err
	})
	if err != nil {
		return nil, classify(err)
	}

	return withoutHash(created), nil
}

// Authenticate checks email and password and issues a fresh token pair.
// Unknown email and wrong password are indistinguishable to the caller and
// each cost exactly one password verification.
func (s *SessionService) Authenticate(ctx context.Context, email, password string) (*models.TokenPair, error) {
	var user *models.User
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).FindByEmail(ctx, normalizeEmail(email))
		return err
	})

	switch {
	case errors.Is(err, common.ErrorNotFound):
		s.hasher.Verify(password, s.dummyDigest)
		return nil, common.ErrInvalidCredentials
	case err != nil:
		return nil, internal(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, common.ErrInvalidCredentials
	}

	return s.issuePair(user.ID)
}

// Validate resolves an access token to the identity it was issued for.
// Every rejection wraps common.ErrorUnauthorized; the specific cause stays
// in the chain for logging.
func (s *SessionService) Validate(ctx context.Context, token string) (models.Identity, error) {
	claims, err := s.decode(token, auth.TokenTypeAccess)
	if err != nil {
		return models.Identity{}, err
	}

	user, err := s.resolve(ctx, claims)
	if err != nil {
		return models.Identity{}, err
	}
	return user.Identity(), nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is returned unchanged.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	claims, err := s.decode(refreshToken, auth.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.resolve(ctx, claims)
	if err != nil {
		return nil, err
	}

	access, accessClaims, err := s.codec.Issue(user.ID, uuid.NewString(), auth.TokenTypeAccess, s.accessTokenValidityDuration)
	if err != nil {
		return nil, internal(err)
	}

	return &models.TokenPair{
		AccessToken:      access,
		AccessExpiresAt:  accessClaims.ExpiresAt.Time,
		RefreshToken:     refreshToken,
		RefreshExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes token until its own expiry. Only signature and expiry are
// checked, so either token type may be logged out. A second logout of the
// same token returns common.ErrAlreadyLoggedOut.
func (s *SessionService) Logout(ctx context.Context, token string) error {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return common.Unauthorized(err)
	}

	var inserted bool
	err = s.withRevocations(ctx, func(ctx context.Context, repo revocations.Repository) error {
		var err error
		inserted, err = repo.Record(ctx, claims.ID, claims.ExpiresAt.Time)
		return err
	})
	if err != nil {
		return internal(err)
	}
	if !inserted {
		return common.ErrAlreadyLoggedOut
	}
	return nil
}

// Profile returns the account behind identity without its password hash.
func (s *SessionService) Profile(ctx context.Context, identity models.Identity) (*models.User, error) {
	var user *models.User
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		user, err = s.repomanager.Users(conn).FindByID(ctx, identity.UserID)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, internal(err)
	}
	return withoutHash(user), nil
}

// PruneRevocations drops revocation records whose tokens have expired.
func (s *SessionService) PruneRevocations(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	err := s.withRevocations(ctx, func(ctx context.Context, repo revocations.Repository) error {
		var err error
		n, err = repo.Prune(ctx, now)
		return err
	})
	if err != nil {
		return 0, internal(err)
	}
	return n, nil
}

// --- helpers below ---

func (s *SessionService) decode(token, tokenType string) (*auth.Claims, error) {
	claims, err := s.codec.Decode(token)
	if err != nil {
		return nil, common.Unauthorized(err)
	}
	if claims.TokenType != tokenType {
		return nil, common.Unauthorized(common.ErrWrongTokenType)
	}
	return claims, nil
}

// withRevocations runs fn against the revocation store, checking out a
// database connection only when the store lives in the database.
func (s *SessionService) withRevocations(ctx context.Context, fn func(ctx context.Context, repo revocations.Repository) error) error {
	if !s.repomanager.RevocationsUseDB() {
		return fn(ctx, s.repomanager.Revocations(nil))
	}
	return dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		return fn(ctx, s.repomanager.Revocations(conn))
	})
}

func checkRevoked(ctx context.Context, repo revocations.Repository, jti string) error {
	revoked, err := repo.Exists(ctx, jti)
	if err != nil {
		return fmt.Errorf("revocation lookup: %w", err)
	}
	if revoked {
		return common.Unauthorized(common.ErrTokenBlacklisted)
	}
	return nil
}

// resolve checks the revocation list and then loads the subject. A revoked
// token never reaches the users table.
func (s *SessionService) resolve(ctx context.Context, claims *auth.Claims) (*models.User, error) {
	sharedConn := s.repomanager.RevocationsUseDB()
	if !sharedConn {
		if err := checkRevoked(ctx, s.repomanager.Revocations(nil), claims.ID); err != nil {
			return nil, resolveError(err)
		}
	}

	var user *models.User
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		if sharedConn {
			if err := checkRevoked(ctx, s.repomanager.Revocations(conn), claims.ID); err != nil {
				return err
			}
		}

		var err error
		user, err = s.repomanager.Users(conn).FindByID(ctx, claims.Subject)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.Unauthorized(err)
			}
			return fmt.Errorf("user lookup: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, resolveError(err)
	}
	return user, nil
}

func resolveError(err error) error {
	if errors.Is(err, common.ErrorUnauthorized) {
		return err
	}
	return internal(err)
}

func (s *SessionService) issuePair(userID string) (*models.TokenPair, error) {
	access, accessClaims, err := s.codec.Issue(userID, uuid.NewString(), auth.TokenTypeAccess, s.accessTokenValidityDuration)
	if err != nil {
		return nil, internal(err)
	}
	refresh, refreshClaims, err := s.codec.Issue(userID, uuid.NewString(), auth.TokenTypeRefresh, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, internal(err)
	}
	return &models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessClaims.ExpiresAt.Time,
		RefreshExpiresAt: refreshClaims.ExpiresAt.Time,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistration(reg models.Registration) error {
	addr, err := mail.ParseAddress(reg.Email)
	if err != nil || addr.Address != reg.Email {
		return fmt.Errorf("%w: invalid email address", common.ErrValidation)
	}
	if reg.Username == "" {
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	if reg.FirstName == "" {
		return fmt.Errorf("%w: first name is required", common.ErrValidation)
	}
	if reg.Age < 0 {
		return fmt.Errorf("%w: age must not be negative", common.ErrValidation)
	}
	if len(reg.Password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLength)
	}
	if len(reg.Password) > maxPasswordLength {
		return fmt.Errorf("%w: password must be at most %d bytes", common.ErrValidation, maxPasswordLength)
	}
	if reg.Password != reg.PasswordConfirmation {
		return fmt.Errorf("%w: passwords do not match", common.ErrValidation)
	}
	return nil
}

// ensureAbsent turns a successful lookup into a sentinel and a not-found
// into nil.
func ensureAbsent(_ *models.User, err error) error {
	switch {
	case err == nil:
		return errFound
	case errors.Is(err, common.ErrorNotFound):
		return nil
	default:
		return err
	}
}

var errFound = errors.New("found")

func conflictOr(err, conflict error) error {
	if errors.Is(err, errFound) {
		return conflict
	}
	return err
}

// classify passes through errors meant for the caller and hides the rest
// behind common.ErrorInternal.
func classify(err error) error {
	if errors.Is(err, common.ErrConflict) || errors.Is(err, common.ErrValidation) {
		return err
	}
	return internal(err)
}

func internal(err error) error {
	return fmt.Errorf("%w: %w", common.ErrorInternal, err)
}

func withoutHash(u *models.User) *models.User {
	c := *u
	c.PasswordHash = ""
	return &c
}
