package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func runAuth(t *testing.T, authHeader string) (called bool, c echo.Context, err error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c = e.NewContext(req, rec)

	mw := Auth("secret")
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	err = handler(c)
	return called, c, err
}

func assertUnauthorized(t *testing.T, called bool, err error) {
	t.Helper()
	if called {
		t.Fatalf("handler must not run")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub":   "user-1",
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	called, c, err := runAuth(t, "Bearer "+signed)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatalf("handler was not called")
	}
	if c.Get(ContextUserID) != "user-1" {
		t.Fatalf("user_id not set, got %v", c.Get(ContextUserID))
	}
	if c.Get(ContextEmail) != "alice@example.com" {
		t.Fatalf("email not set, got %v", c.Get(ContextEmail))
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	called, _, err := runAuth(t, "")
	assertUnauthorized(t, called, err)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	called, _, err := runAuth(t, "Token abc")
	assertUnauthorized(t, called, err)
}

func TestAuthMiddleware_WrongSignature(t *testing.T) {
	signed := signToken(t, "other-secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	called, _, err := runAuth(t, "Bearer "+signed)
	assertUnauthorized(t, called, err)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	signed := signToken(t, "secret", jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	called, _, err := runAuth(t, "Bearer "+signed)
	assertUnauthorized(t, called, err)
}

func TestAuthMiddleware_MissingSubject(t *testing.T) {
	signed := signToken(t, "secret", jwt.MapClaims{
		"email": "alice@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	called, _, err := runAuth(t, "Bearer "+signed)
	assertUnauthorized(t, called, err)
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	called, _, err := runAuth(t, "Bearer not.a.jwt")
	assertUnauthorized(t, called, err)
}
