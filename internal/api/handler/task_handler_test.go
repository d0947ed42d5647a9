package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskboard/todo-api/internal/api/middleware"
	"github.com/taskboard/todo-api/internal/core/domain"
	"github.com/taskboard/todo-api/internal/core/ports"
)

type stubTaskService struct {
	listFn   func(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error)
	createFn func(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error)
	updateFn func(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn func(ctx context.Context, userID string, taskID int64) (bool, error)
}

func (s *stubTaskService) List(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error) {
	return s.listFn(ctx, userID, filter)
}

func (s *stubTaskService) Create(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, userID, input)
}

func (s *stubTaskService) Update(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, userID, taskID, input)
}

func (s *stubTaskService) Delete(ctx context.Context, userID string, taskID int64) (bool, error) {
	return s.deleteFn(ctx, userID, taskID)
}

// newAuthedContext builds a context as the Auth middleware would have left it.
func newAuthedContext(t *testing.T, method, path, body string, pathParams map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserID, "user-1")
	for name, value := range pathParams {
		c.SetParamNames(name)
		c.SetParamValues(value)
	}
	return c, rec
}

func TestTaskHandler_List_Success(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error) {
			if userID != "user-1" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			if filter != domain.FilterPending {
				t.Fatalf("expected pending filter, got %s", filter)
			}
			return []domain.Task{{ID: 1, UserID: userID, Title: "Buy milk"}}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/tasks?status=pending", "", nil)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var tasks []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(tasks) != 1 || tasks[0]["title"] != "Buy milk" {
		t.Fatalf("unexpected payload: %+v", tasks)
	}
}

func TestTaskHandler_List_EmptyIsJSONArray(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, userID string, filter domain.StatusFilter) ([]domain.Task, error) {
			return []domain.Task{}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodGet, "/tasks", "", nil)
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestTaskHandler_List_MissingClaims(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestTaskHandler_Create_Success(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
			if userID != "user-1" || input.Title != "Buy milk" {
				t.Fatalf("unexpected args: %s %+v", userID, input)
			}
			return &domain.Task{ID: 7, UserID: userID, Title: input.Title}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPost, "/tasks", `{"title":"Buy milk"}`, nil)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var task map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &task); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if task["id"] != float64(7) || task["user_id"] != "user-1" {
		t.Fatalf("unexpected payload: %+v", task)
	}
}

func TestTaskHandler_Create_MissingTitle(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, userID string, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPost, "/tasks", `{"description":"no title"}`, nil)
	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestTaskHandler_Update_Success(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
			if taskID != 42 {
				t.Fatalf("unexpected task id: %d", taskID)
			}
			if input.Completed == nil || !*input.Completed {
				t.Fatalf("expected completed patch, got %+v", input)
			}
			if input.Title != nil {
				t.Fatalf("absent fields must stay nil")
			}
			return &domain.Task{ID: taskID, UserID: userID, Title: "kept", Completed: true}, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodPut, "/tasks/42", `{"completed":true}`,
		map[string]string{"id": "42"})
	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestTaskHandler_Update_NotFound(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrTaskNotFound
		},
	}
	handler := NewTaskHandler(stub)

	c, _ := newAuthedContext(t, http.MethodPut, "/tasks/42", `{}`, map[string]string{"id": "42"})
	if err := handler.Update(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound to propagate, got %v", err)
	}
}

func TestTaskHandler_Update_BadID(t *testing.T) {
	handler := NewTaskHandler(&stubTaskService{
		updateFn: func(ctx context.Context, userID string, taskID int64, input ports.UpdateTaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newAuthedContext(t, http.MethodPut, "/tasks/abc", `{}`, map[string]string{"id": "abc"})
	err := handler.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for non-numeric id, got %v", err)
	}
}

func TestTaskHandler_Delete_Success(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, userID string, taskID int64) (bool, error) {
			if userID != "user-1" || taskID != 9 {
				t.Fatalf("unexpected args: %s %d", userID, taskID)
			}
			return true, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, rec := newAuthedContext(t, http.MethodDelete, "/tasks/9", "", map[string]string{"id": "9"})
	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, userID string, taskID int64) (bool, error) {
			return false, nil
		},
	}
	handler := NewTaskHandler(stub)

	c, _ := newAuthedContext(t, http.MethodDelete, "/tasks/9", "", map[string]string{"id": "9"})
	err := handler.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %v", err)
	}
}
