// Package access derives capability checks from a user record and decides
// whether a request may proceed.
//
// Everything here is pure: an Evaluator, Guard or Gate is built from the
// user record of the current request and never mutates it, so values can be
// shared across goroutines without locking. Unexpected input (nil user,
// unknown role, unknown tag) always resolves to "denied".
package access

import "github.com/carepoint/clinic-admin/internal/core/domain"

// Evaluator answers capability questions for one user record.
type Evaluator struct {
	user    *domain.User
	granted map[domain.Permission]struct{}
}

// New builds an Evaluator for user. A nil user yields an Evaluator that
// denies everything.
func New(user *domain.User) Evaluator {
	e := Evaluator{user: user}
	if user == nil {
		return e
	}
	e.granted = make(map[domain.Permission]struct{}, len(user.Permissions))
	for _, p := range user.Permissions {
		if p.Valid() {
			e.granted[p] = struct{}{}
		}
	}
	return e
}

// User returns the record the evaluator was built from.
func (e Evaluator) User() *domain.User { return e.user }

// Authenticated reports whether a user record is present.
func (e Evaluator) Authenticated() bool { return e.user != nil }

// Active reports whether the user is present and active.
func (e Evaluator) Active() bool { return e.user != nil && e.user.IsActive }

// eligible is the common guard: a present, active user with a known role.
func (e Evaluator) eligible() bool {
	return e.Active() && e.user.Role.Valid()
}

// IsAdmin reports whether the admin bypass applies.
func (e Evaluator) IsAdmin() bool {
	return e.eligible() && e.user.Role == domain.RoleAdmin
}

// HasPermission reports whether the user holds p.
func (e Evaluator) HasPermission(p domain.Permission) bool {
	if !e.eligible() || !p.Valid() {
		return false
	}
	if e.IsAdmin() {
		return true
	}
	_, ok := e.granted[p]
	return ok
}

// HasAnyPermission reports whether the user holds at least one of ps.
// An empty list is never satisfied for non-admin users.
func (e Evaluator) HasAnyPermission(ps ...domain.Permission) bool {
	if !e.eligible() {
		return false
	}
	if e.IsAdmin() {
		return allValid(ps)
	}
	for _, p := range ps {
		if e.HasPermission(p) {
			return true
		}
	}
	return false
}

// HasAllPermissions reports whether the user holds every one of ps.
// An empty list is never satisfied for non-admin users, mirroring
// HasAnyPermission.
func (e Evaluator) HasAllPermissions(ps ...domain.Permission) bool {
	if !e.eligible() {
		return false
	}
	if e.IsAdmin() {
		return allValid(ps)
	}
	if len(ps) == 0 {
		return false
	}
	for _, p := range ps {
		if !e.HasPermission(p) {
			return false
		}
	}
	return true
}

// HasRole reports whether the user's role is one of roles.
func (e Evaluator) HasRole(roles ...domain.Role) bool {
	if !e.eligible() {
		return false
	}
	for _, r := range roles {
		if e.user.Role == r {
			return true
		}
	}
	return false
}

// Effective lists the catalog permissions the user actually holds, in
// catalog order.
func (e Evaluator) Effective() []domain.Permission {
	out := make([]domain.Permission, 0)
	for _, p := range domain.Permissions() {
		if e.HasPermission(p) {
			out = append(out, p)
		}
	}
	return out
}

func allValid(ps []domain.Permission) bool {
	for _, p := range ps {
		if !p.Valid() {
			return false
		}
	}
	return true
}

func (e Evaluator) CanViewPatients() bool   { return e.HasPermission(domain.PermViewPatients) }
func (e Evaluator) CanManagePatients() bool { return e.HasPermission(domain.PermManagePatients) }
func (e Evaluator) CanViewStaff() bool      { return e.HasPermission(domain.PermViewStaff) }
func (e Evaluator) CanManageStaff() bool    { return e.HasPermission(domain.PermManageStaff) }
func (e Evaluator) CanViewFinance() bool    { return e.HasPermission(domain.PermViewFinance) }
func (e Evaluator) CanManageFinance() bool  { return e.HasPermission(domain.PermManageFinance) }
func (e Evaluator) CanViewPayroll() bool    { return e.HasPermission(domain.PermViewPayroll) }
func (e Evaluator) CanManagePayroll() bool  { return e.HasPermission(domain.PermManagePayroll) }
func (e Evaluator) CanViewUsers() bool      { return e.HasPermission(domain.PermViewUsers) }
func (e Evaluator) CanManageUsers() bool    { return e.HasPermission(domain.PermManageUsers) }
func (e Evaluator) CanViewReports() bool    { return e.HasPermission(domain.PermViewReports) }
func (e Evaluator) CanManageReports() bool  { return e.HasPermission(domain.PermManageReports) }
func (e Evaluator) CanViewSettings() bool   { return e.HasPermission(domain.PermViewSettings) }
func (e Evaluator) CanManageSettings() bool { return e.HasPermission(domain.PermManageSettings) }
func (e Evaluator) CanViewDatabase() bool   { return e.HasPermission(domain.PermViewDatabase) }
func (e Evaluator) CanManageDatabase() bool { return e.HasPermission(domain.PermManageDatabase) }
