package ports

import (
	"context"

	"github.com/taskboard/todo-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks. Every query that
// targets a single task conjoins the task id with the owner id, so a task
// belonging to another user is indistinguishable from a missing one.
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// ListByOwner returns the owner's tasks, newest created first.
	ListByOwner(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error)
	// FindOwned retrieves the task with id taskID owned by userID, or
	// domain.ErrTaskNotFound.
	FindOwned(ctx context.Context, taskID int64, userID string) (*domain.Task, error)
	// UpdateOwned persists the task row scoped by (task.ID, task.UserID).
	UpdateOwned(ctx context.Context, task *domain.Task) (*domain.Task, error)
	// DeleteOwned removes the row scoped by (taskID, userID) and reports
	// whether a row was deleted.
	DeleteOwned(ctx context.Context, taskID int64, userID string) (bool, error)
}
