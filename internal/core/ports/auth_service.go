package ports

import (
	"context"

	"github.com/taskboard/todo-api/internal/core/domain"
)

type AuthService interface {
	// Register creates an account and returns a signed token for it.
	Register(ctx context.Context, email, password, name string) (string, *domain.User, error)
	// Login verifies credentials and returns a signed token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
