package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/taskboard/todo-api/internal/api/metrics"
)

// Context keys populated by Auth for downstream handlers.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
)

// Auth validates the bearer JWT and injects the subject claim into context.
// The subject is the sole source of the acting user id; client-supplied
// user fields are never consulted.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return reject("missing_header", "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return reject("malformed_header", "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return reject("invalid_token", "invalid token")
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				return reject("missing_subject", "token missing subject claim")
			}

			c.Set(ContextUserID, sub)
			c.Set(ContextEmail, claims["email"])

			return next(c)
		}
	}
}

func reject(reason, msg string) error {
	metrics.AuthRejectionsTotal.WithLabelValues(reason).Inc()
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
