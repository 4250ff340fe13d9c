package models

import "time"

// TokenPair is what a successful login returns.
type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// Registration is the input for creating an account.
type Registration struct {
	Email                string
	Username             string
	FirstName            string
	LastName             string
	Age                  int
	Password             string
	PasswordConfirmation string
}
