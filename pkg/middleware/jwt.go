package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"LearnVerse/internal/auth"
	"LearnVerse/internal/errs"
	"LearnVerse/internal/observability"
	"LearnVerse/internal/users"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RoleResolver looks up the stored role for an email; "" means none.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (users.Role, error)
}

// Authenticate requires "Authorization: Bearer <token>" and stores the
// verified claims on the context under auth.ContextKey.
func Authenticate(tokens TokenVerifier, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				observability.DenyGate("auth")
				log.Debug("missing authorization header", zap.String("path", c.Path()))
				return errs.ErrUnauthorized
			}

			var tokenString string
			if parts := strings.Split(authHeader, " "); len(parts) > 1 {
				tokenString = parts[1]
			}

			claims, err := tokens.Verify(tokenString)
			if err != nil {
				observability.DenyGate("auth")
				log.Debug("token rejected", zap.Error(err))
				return errs.ErrUnauthorized
			}
			c.Set(auth.ContextKey, claims)
			return next(c)
		}
	}
}

// RequireRole admits the request only when the caller's stored role is role.
// It must run after Authenticate; the role is re-read on every request.
func RequireRole(resolver RoleResolver, role users.Role, log *zap.Logger) echo.MiddlewareFunc {
	gate := "role:" + string(role)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.FromContext(c)
			if !ok {
				observability.DenyGate(gate)
				return errs.ErrUnauthorized
			}

			got, err := resolver.ResolveRole(c.Request().Context(), claims.Email)
			if err != nil {
				return err
			}
			if got == "" || got != role {
				observability.DenyGate(gate)
				log.Debug("role mismatch", zap.String("email", claims.Email),
					zap.String("required", string(role)), zap.String("got", string(got)))
				return errs.ErrForbidden
			}
			return next(c)
		}
	}
}

// RequireSelf admits the request only when path param equals the caller's email.
func RequireSelf(param string, log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := auth.FromContext(c)
			if !ok {
				observability.DenyGate("self")
				return errs.ErrUnauthorized
			}
			if c.Param(param) != claims.Email {
				observability.DenyGate("self")
				log.Debug("ownership mismatch", zap.String("email", claims.Email), zap.String(param, c.Param(param)))
				return errs.ErrForbidden
			}
			return next(c)
		}
	}
}
