package domain

import (
	"errors"
	"time"
)

const (
	TitleMinLen = 1
	TitleMaxLen = 200
)

var ErrTaskNotFound = errors.New("task not found")
var ErrInvalidTitle = errors.New("title must be between 1 and 200 characters")
var ErrUnauthorized = errors.New("unauthorized")

// StatusFilter narrows task listings by completion state.
type StatusFilter string

const (
	FilterAll       StatusFilter = "all"
	FilterPending   StatusFilter = "pending"
	FilterCompleted StatusFilter = "completed"
)

// ParseStatusFilter maps a query value to a StatusFilter. Anything other
// than "pending" or "completed" behaves as "all".
func ParseStatusFilter(s string) StatusFilter {
	switch StatusFilter(s) {
	case FilterPending:
		return FilterPending
	case FilterCompleted:
		return FilterCompleted
	default:
		return FilterAll
	}
}

// Task is a single todo item owned by exactly one user. Ownership is set at
// creation time and never changes.
type Task struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
