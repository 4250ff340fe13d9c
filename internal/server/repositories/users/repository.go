// Package users stores registered accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository is the credential store. Lookups return common.ErrorNotFound
// for unknown keys; Create returns common.ErrEmailTaken or
// common.ErrUsernameTaken when a uniqueness constraint is hit.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
}
