package ports

import (
	"context"

	"github.com/taskboard/todo-api/internal/core/domain"
)

// CreateTaskInput carries the client-supplied fields for a new task.
// Ownership is never part of the input; the service assigns it from the
// authenticated caller.
type CreateTaskInput struct {
	Title       string
	Description *string
	Completed   bool
}

// UpdateTaskInput is a partial patch: nil fields are left untouched.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService defines the owner-scoped task operations.
type TaskService interface {
	List(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error)
	Create(ctx context.Context, userID string, input CreateTaskInput) (*domain.Task, error)
	Update(ctx context.Context, userID string, taskID int64, input UpdateTaskInput) (*domain.Task, error)
	// Delete reports whether a task was removed; a missing or foreign task
	// yields (false, nil).
	Delete(ctx context.Context, userID string, taskID int64) (bool, error)
}
