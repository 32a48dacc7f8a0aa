package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/core/access"
	"github.com/carepoint/clinic-admin/internal/core/domain"
)

const (
	ctxUser      = "user"
	ctxSession   = "session_id"
	ctxEvaluator = "evaluator"
)

// SetUser attaches the session's user record to the request.
func SetUser(c echo.Context, sessionID string, user *domain.User) {
	c.Set(ctxSession, sessionID)
	c.Set(ctxUser, user)
	c.Set(ctxEvaluator, access.New(user))
}

// UserFrom returns the request's user, or nil when unauthenticated.
func UserFrom(c echo.Context) *domain.User {
	u, _ := c.Get(ctxUser).(*domain.User)
	return u
}

// SessionIDFrom returns the request's session id, or "".
func SessionIDFrom(c echo.Context) string {
	sid, _ := c.Get(ctxSession).(string)
	return sid
}

// EvaluatorFrom returns the evaluator built for this request's user. An
// unauthenticated request gets an evaluator that denies everything.
func EvaluatorFrom(c echo.Context) access.Evaluator {
	if e, ok := c.Get(ctxEvaluator).(access.Evaluator); ok {
		return e
	}
	e := access.New(UserFrom(c))
	c.Set(ctxEvaluator, e)
	return e
}
