package access

import (
	"fmt"
	"strings"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// Outcome is the single result of a guard check.
type Outcome string

const (
	OutcomeGranted                Outcome = "granted"
	OutcomeAuthenticationRequired Outcome = "authentication_required"
	OutcomeAccountInactive        Outcome = "account_inactive"
	OutcomeMissingRole            Outcome = "missing_role"
	OutcomeMissingPermission      Outcome = "missing_permission"
	OutcomeMissingAllPermissions  Outcome = "missing_all_permissions"
	OutcomeMissingAnyPermission   Outcome = "missing_any_permission"
)

// Denied reports whether the outcome blocks the protected content.
func (o Outcome) Denied() bool { return o != OutcomeGranted }

// Fallbackable reports whether a caller-supplied fallback may replace the
// denial. Missing or inactive accounts always get their own state.
func (o Outcome) Fallbackable() bool {
	switch o {
	case OutcomeMissingRole, OutcomeMissingPermission, OutcomeMissingAllPermissions, OutcomeMissingAnyPermission:
		return true
	}
	return false
}

// Requirement lists what a protected view or route needs. Zero-valued fields
// are not checked; an empty Requirement only needs an active user.
type Requirement struct {
	Roles       []domain.Role
	Permission  domain.Permission
	Permissions []domain.Permission
	// RequireAll switches Permissions from "any of" to "all of".
	RequireAll bool
}

// Role is shorthand for a requirement on one or more roles.
func Role(roles ...domain.Role) Requirement { return Requirement{Roles: roles} }

// Permission is shorthand for a requirement on a single permission.
func Permission(p domain.Permission) Requirement { return Requirement{Permission: p} }

// AnyOf requires at least one of ps.
func AnyOf(ps ...domain.Permission) Requirement { return Requirement{Permissions: ps} }

// AllOf requires every one of ps.
func AllOf(ps ...domain.Permission) Requirement {
	return Requirement{Permissions: ps, RequireAll: true}
}

// Decision is the guard verdict with a user-facing message.
type Decision struct {
	Outcome Outcome `json:"reason"`
	Message string  `json:"error"`
}

// Allowed reports whether the decision grants access.
func (d Decision) Allowed() bool { return d.Outcome == OutcomeGranted }

// Guard applies Requirements to one user record in a fixed precedence order.
type Guard struct {
	eval Evaluator
}

// NewGuard builds a Guard for user.
func NewGuard(user *domain.User) Guard {
	return Guard{eval: New(user)}
}

// GuardFor reuses an already built Evaluator.
func GuardFor(e Evaluator) Guard { return Guard{eval: e} }

// Evaluator exposes the underlying evaluator.
func (g Guard) Evaluator() Evaluator { return g.eval }

// Check returns exactly one outcome for req.
func (g Guard) Check(req Requirement) Decision {
	e := g.eval
	switch {
	case !e.Authenticated():
		return deny(OutcomeAuthenticationRequired, "authentication required")
	case !e.Active():
		return deny(OutcomeAccountInactive, "account inactive")
	}

	if len(req.Roles) > 0 && !e.HasRole(req.Roles...) {
		return deny(OutcomeMissingRole, "requires role "+joinRoles(req.Roles))
	}

	if req.Permission != "" && !e.HasPermission(req.Permission) {
		return deny(OutcomeMissingPermission, fmt.Sprintf("missing permission %s", req.Permission))
	}

	if len(req.Permissions) > 0 {
		if req.RequireAll {
			if !e.HasAllPermissions(req.Permissions...) {
				return deny(OutcomeMissingAllPermissions,
					"requires all of the permissions "+joinPermissions(req.Permissions))
			}
		} else if !e.HasAnyPermission(req.Permissions...) {
			return deny(OutcomeMissingAnyPermission,
				"requires any of the permissions "+joinPermissions(req.Permissions))
		}
	}

	// Unknown roles never reach the protected content even when the
	// requirement itself is empty.
	if !e.eligible() {
		return deny(OutcomeMissingRole, "unknown role")
	}

	return Decision{Outcome: OutcomeGranted}
}

func deny(o Outcome, msg string) Decision {
	return Decision{Outcome: o, Message: msg}
}

func joinRoles(rs []domain.Role) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}

func joinPermissions(ps []domain.Permission) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(p)
	}
	return strings.Join(parts, ", ")
}
