// Package revocations stores the ids (jti) of tokens that were logged out
// before their natural expiry.
package revocations

import (
	"context"
	"time"
)

// Repository is the revocation (denylist) store. Records are insert-only.
type Repository interface {
	// Record marks jti as revoked until expiresAt. It is an atomic
	// insert-if-absent: inserted is true for exactly one of any number of
	// concurrent calls with the same jti.
	Record(ctx context.Context, jti string, expiresAt time.Time) (inserted bool, err error)

	// Exists reports whether jti has been revoked.
	Exists(ctx context.Context, jti string) (bool, error)

	// Prune deletes records whose expiry is not after now and returns how
	// many were removed.
	Prune(ctx context.Context, now time.Time) (int64, error)
}
