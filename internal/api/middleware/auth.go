package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// SessionResolver turns a bearer token into the session's user record.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (sessionID string, user *domain.User, err error)
}

// Authenticate loads the session user for a bearer token. It never rejects
// a request itself: routes that need a user are wrapped with Require.
func Authenticate(resolver SessionResolver, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			sid, user, err := resolver.Resolve(c.Request().Context(), token)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("bearer token rejected")
				return next(c)
			}

			SetUser(c, sid, user)
			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
