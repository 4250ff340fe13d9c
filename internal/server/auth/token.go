// Package auth holds the cryptographic primitives of the session layer:
// JWT issuance/verification and password hashing.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token types carried in the token_type claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the registered JWT claims plus the token type.
// Subject is the user id and ID is the jti.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"token_type"`
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithClock replaces time.Now as the codec's notion of the current time.
func WithClock(now func() time.Time) CodecOption {
	return func(c *Codec) { c.now = now }
}

// Codec signs and verifies HMAC JWTs with a fixed secret and algorithm.
// It is immutable after construction and safe for concurrent use.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewCodec returns a Codec for alg (HS256, HS384 or HS512).
func NewCodec(secret []byte, alg string, opts ...CodecOption) (*Codec, error) {
	if len(secret) == 0 {
		return nil, errors.New("empty signing secret")
	}

	var method jwt.SigningMethod
	switch alg {
	case "HS256":
		method = jwt.SigningMethodHS256
	case "HS384":
		method = jwt.SigningMethodHS384
	case "HS512":
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", alg)
	}

	c := &Codec{
		secret: append([]byte(nil), secret...),
		method: method,
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Issue signs a token for subject with the given jti and lifetime.
// exp is exactly iat + ttl.
func (c *Codec) Issue(subject, jti, tokenType string, ttl time.Duration) (string, *Claims, error) {
	if ttl <= 0 {
		return "", nil, fmt.Errorf("non-positive token ttl %s", ttl)
	}
	if subject == "" || jti == "" {
		return "", nil, errors.New("subject and jti are required")
	}

	iat := c.now().Truncate(jwt.TimePrecision)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(iat.Add(ttl)),
		},
		TokenType: tokenType,
	}

	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

// Decode verifies the signature and expiry of token and returns its claims.
// Errors are one of common.ErrInvalidSignature, common.ErrTokenExpired or
// common.ErrInvalidToken.
func (c *Codec) Decode(token string) (*Claims, error) {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, common.ErrInvalidSignature
	default:
		return nil, common.ErrInvalidToken
	}

	if !parsed.Valid || claims.Subject == "" || claims.ID == "" || claims.IssuedAt == nil {
		return nil, common.ErrInvalidToken
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		return nil, common.ErrInvalidToken
	}
	return claims, nil
}
