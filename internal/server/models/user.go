// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string
	Email        string
	Username     string
	FirstName    string
	LastName     string
	Age          int
	PasswordHash string
	CreatedAt    time.Time
}

// Identity is the authenticated principal resolved from an access token.
type Identity struct {
	UserID   string
	Email    string
	Username string
}

// Identity returns the principal view of u.
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Email: u.Email, Username: u.Username}
}
