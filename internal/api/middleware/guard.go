package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carepoint/clinic-admin/internal/api/metrics"
	"github.com/carepoint/clinic-admin/internal/core/access"
	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// GuardOption customises Require.
type GuardOption func(*guardOptions)

type guardOptions struct {
	fallback echo.HandlerFunc
}

// WithFallback serves fallback instead of a 403 when the user is signed in
// and active but lacks the required role or permissions.
func WithFallback(fallback echo.HandlerFunc) GuardOption {
	return func(o *guardOptions) { o.fallback = fallback }
}

// Require admits a request only when the guard grants req for the request's
// user. No user yields 401; every other denial yields 403 with the reason.
func Require(req access.Requirement, opts ...GuardOption) echo.MiddlewareFunc {
	var o guardOptions
	for _, opt := range opts {
		opt(&o)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			decision := access.GuardFor(EvaluatorFrom(c)).Check(req)
			if decision.Allowed() {
				metrics.AccessDecisionsTotal.WithLabelValues(string(decision.Outcome), "false").Inc()
				return next(c)
			}

			if o.fallback != nil && decision.Outcome.Fallbackable() {
				metrics.AccessDecisionsTotal.WithLabelValues(string(decision.Outcome), "true").Inc()
				return o.fallback(c)
			}

			metrics.AccessDecisionsTotal.WithLabelValues(string(decision.Outcome), "false").Inc()
			status := http.StatusForbidden
			if decision.Outcome == access.OutcomeAuthenticationRequired {
				status = http.StatusUnauthorized
			}
			return c.JSON(status, decision)
		}
	}
}

// RequireActive admits any signed-in, active user with a known role.
func RequireActive() echo.MiddlewareFunc {
	return Require(access.Requirement{})
}

// RequireRole admits users holding one of roles.
func RequireRole(roles ...domain.Role) echo.MiddlewareFunc {
	return Require(access.Role(roles...))
}

// RequirePermission admits users holding p.
func RequirePermission(p domain.Permission, opts ...GuardOption) echo.MiddlewareFunc {
	return Require(access.Permission(p), opts...)
}
