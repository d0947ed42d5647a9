package service

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/taskboard/todo-api/internal/core/domain"
	"github.com/taskboard/todo-api/internal/core/ports"
)

// TaskService implements the owner-scoped CRUD operations. The acting user
// id always comes from the verified token, never from the request body, and
// is pushed down into every repository query.
type TaskService struct {
	repo   ports.TaskRepository
	logger zerolog.Logger
}

func NewTaskService(repo ports.TaskRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

func (s *TaskService) List(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error) {
	return s.repo.ListByOwner(ctx, userID, filter)
}

func (s *TaskService) Create(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
	if !titleValid(input.Title) {
		return nil, domain.ErrInvalidTitle
	}

	now := time.Now().UTC()
	task := &domain.Task{
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		Completed:   input.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Insert(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().Int64("task_id", created.ID).Str("user_id", userID).Msg("task created")
	return created, nil
}

// Update applies a partial merge: only non-nil patch fields overwrite the
// stored row. The updated timestamp is refreshed even when the patch is
// empty.
func (s *TaskService) Update(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	if input.Title != nil && !titleValid(*input.Title) {
		return nil, domain.ErrInvalidTitle
	}

	task, err := s.repo.FindOwned(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.Completed != nil {
		task.Completed = *input.Completed
	}
	task.UpdatedAt = time.Now().UTC()

	return s.repo.UpdateOwned(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, userID string, taskID int64) (bool, error) {
	deleted, err := s.repo.DeleteOwned(ctx, taskID, userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("task_id", taskID).Str("user_id", userID).Msg("failed to delete task")
		return false, err
	}
	return deleted, nil
}

func titleValid(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= domain.TitleMinLen && n <= domain.TitleMaxLen
}
