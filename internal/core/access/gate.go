package access

import "github.com/carepoint/clinic-admin/internal/core/domain"

// Gate is the silent variant of Guard: it only says yes or no, for inline
// affordances that should disappear rather than show a denial.
type Gate struct {
	guard Guard
}

// NewGate builds a Gate for user.
func NewGate(user *domain.User) Gate {
	return Gate{guard: NewGuard(user)}
}

// GateFor reuses an already built Evaluator.
func GateFor(e Evaluator) Gate { return Gate{guard: GuardFor(e)} }

// Allows reports whether req passes with the same precedence as Guard.Check.
func (g Gate) Allows(req Requirement) bool {
	return g.guard.Check(req).Allowed()
}

// Gated returns content when req passes and otherwise the first fallback,
// or the zero value of T when none is given.
func Gated[T any](g Gate, req Requirement, content T, fallback ...T) T {
	if g.Allows(req) {
		return content
	}
	if len(fallback) > 0 {
		return fallback[0]
	}
	var zero T
	return zero
}
