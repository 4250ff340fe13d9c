package models

import "time"

// RevokedToken marks a token id as no longer acceptable until ExpiresAt,
// after which the token would be rejected as expired anyway.
type RevokedToken struct {
	JTI       string
	ExpiresAt time.Time
	CreatedAt time.Time
}
