// Package tasks stores per-user tasks. Every query is scoped by owner.
package tasks

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

// Repository reports a task owned by someone else as common.ErrorNotFound.
type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Get(ctx context.Context, userID, id string) (*models.Task, error)
	Update(ctx context.Context, userID, id string, upd models.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, id string) error
}
