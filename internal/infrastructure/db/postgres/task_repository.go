package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskboard/todo-api/internal/core/domain"
)

// TaskRepository persists tasks. Single-row queries always carry the
// owner id in the WHERE clause alongside the task id, so ownership is
// enforced inside the database rather than checked after a fetch.
type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

const taskColumns = `id, user_id, title, description, completed, created_at, updated_at`

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const stmt = `INSERT INTO tasks (title, description, completed, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns

	created, err := scanTask(r.pool.QueryRow(ctx, stmt,
		task.Title, task.Description, task.Completed, task.UserID, task.CreatedAt, task.UpdatedAt))
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}
	return created, nil
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	switch filter {
	case domain.FilterPending:
		query += ` AND completed = FALSE`
	case domain.FilterCompleted:
		query += ` AND completed = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	return tasks, nil
}

func (r *TaskRepository) FindOwned(ctx context.Context, taskID int64, userID string) (*domain.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND user_id = $2`

	task, err := scanTask(r.pool.QueryRow(ctx, query, taskID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (r *TaskRepository) UpdateOwned(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	const stmt = `UPDATE tasks
		SET title = $1, description = $2, completed = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
		RETURNING ` + taskColumns

	updated, err := scanTask(r.pool.QueryRow(ctx, stmt,
		task.Title, task.Description, task.Completed, task.UpdatedAt, task.ID, task.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return updated, nil
}

func (r *TaskRepository) DeleteOwned(ctx context.Context, taskID int64, userID string) (bool, error) {
	const stmt = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	tag, err := r.pool.Exec(ctx, stmt, taskID, userID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	err := row.Scan(&t.ID, &t.UserID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
