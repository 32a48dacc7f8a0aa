package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

func TestGate_Allows(t *testing.T) {
	g := NewGate(activeUser(domain.RoleAccountant, domain.PermViewFinance))

	assert.True(t, g.Allows(Permission(domain.PermViewFinance)))
	assert.False(t, g.Allows(Permission(domain.PermManageFinance)))
	assert.False(t, NewGate(nil).Allows(Requirement{}))
}

func TestGated_DefaultsToZeroValue(t *testing.T) {
	g := NewGate(activeUser(domain.RoleNurse))

	assert.Equal(t, "", Gated(g, Permission(domain.PermManageUsers), "Users"))
	assert.Nil(t, Gated[[]string](g, Permission(domain.PermManageUsers), []string{"x"}))
}

func TestGated_UsesFallback(t *testing.T) {
	g := NewGate(activeUser(domain.RoleNurse, domain.PermViewPatients))

	assert.Equal(t, "Patients", Gated(g, Permission(domain.PermViewPatients), "Patients", "locked"))
	assert.Equal(t, "locked", Gated(g, Permission(domain.PermViewStaff), "Staff", "locked"))
}

func TestGate_InactiveAdminSeesNothing(t *testing.T) {
	u := activeUser(domain.RoleAdmin)
	u.IsActive = false
	g := NewGate(u)

	for _, req := range everyRequirement {
		assert.False(t, g.Allows(req))
	}
}
