package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/repomanager"
)

const maxTitleLength = 200

// TaskService manages the caller's own tasks. A task that belongs to
// someone else is reported as common.ErrorNotFound.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m, now: time.Now}
}

func (s *TaskService) Create(ctx context.Context, owner models.Identity, title, description string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}

	id, err := common.NewULID(s.now())
	if err != nil {
		return nil, internal(err)
	}

	var task *models.Task
	err = dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(conn).Create(ctx, &models.Task{
			ID:          id,
			UserID:      owner.UserID,
			Title:       title,
			Description: description,
		})
		return err
	})
	if err != nil {
		return nil, internal(err)
	}
	return task, nil
}

func (s *TaskService) List(ctx context.Context, owner models.Identity) ([]*models.Task, error) {
	var list []*models.Task
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		list, err = s.repomanager.Tasks(conn).List(ctx, owner.UserID)
		return err
	})
	if err != nil {
		return nil, internal(err)
	}
	return list, nil
}

func (s *TaskService) Get(ctx context.Context, owner models.Identity, id string) (*models.Task, error) {
	if id == "" {
		return nil, common.ErrorNotFound
	}

	var task *models.Task
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(conn).Get(ctx, owner.UserID, id)
		return err
	})
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return task, nil
}

// Update changes the fields set in upd and leaves the others alone.
func (s *TaskService) Update(ctx context.Context, owner models.Identity, id string, upd models.TaskUpdate) (*models.Task, error) {
	if id == "" {
		return nil, common.ErrorNotFound
	}
	if upd.Title != nil {
		t := strings.TrimSpace(*upd.Title)
		if err := validateTitle(t); err != nil {
			return nil, err
		}
		upd.Title = &t
	}

	var task *models.Task
	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		var err error
		task, err = s.repomanager.Tasks(conn).Update(ctx, owner.UserID, id, upd)
		return err
	})
	if err != nil {
		return nil, notFoundOrInternal(err)
	}
	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, owner models.Identity, id string) error {
	if id == "" {
		return common.ErrorNotFound
	}

	err := dbx.WithConn(ctx, s.db, func(ctx context.Context, conn dbx.DBTX) error {
		return s.repomanager.Tasks(conn).Delete(ctx, owner.UserID, id)
	})
	if err != nil {
		return notFoundOrInternal(err)
	}
	return nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", common.ErrValidation, maxTitleLength)
	}
	return nil
}

func notFoundOrInternal(err error) error {
	if errors.Is(err, common.ErrorNotFound) {
		return common.ErrorNotFound
	}
	return internal(err)
}
