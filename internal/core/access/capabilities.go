package access

import "github.com/carepoint/clinic-admin/internal/core/domain"

// Capabilities is the resolved capability set sent to clients so they can
// hide affordances the server would refuse anyway.
type Capabilities struct {
	Authenticated bool                `json:"authenticated"`
	Active        bool                `json:"active"`
	Admin         bool                `json:"admin"`
	Role          domain.Role         `json:"role,omitempty"`
	Permissions   []domain.Permission `json:"permissions"`

	CanViewPatients   bool `json:"can_view_patients"`
	CanManagePatients bool `json:"can_manage_patients"`
	CanViewStaff      bool `json:"can_view_staff"`
	CanManageStaff    bool `json:"can_manage_staff"`
	CanViewFinance    bool `json:"can_view_finance"`
	CanManageFinance  bool `json:"can_manage_finance"`
	CanViewPayroll    bool `json:"can_view_payroll"`
	CanManagePayroll  bool `json:"can_manage_payroll"`
	CanViewUsers      bool `json:"can_view_users"`
	CanManageUsers    bool `json:"can_manage_users"`
	CanViewReports    bool `json:"can_view_reports"`
	CanManageReports  bool `json:"can_manage_reports"`
	CanViewSettings   bool `json:"can_view_settings"`
	CanManageSettings bool `json:"can_manage_settings"`
	CanViewDatabase   bool `json:"can_view_database"`
	CanManageDatabase bool `json:"can_manage_database"`
}

// Capabilities resolves every predicate once.
func (e Evaluator) Capabilities() Capabilities {
	c := Capabilities{
		Authenticated: e.Authenticated(),
		Active:        e.Active(),
		Admin:         e.IsAdmin(),
		Permissions:   e.Effective(),

		CanViewPatients:   e.CanViewPatients(),
		CanManagePatients: e.CanManagePatients(),
		CanViewStaff:      e.CanViewStaff(),
		CanManageStaff:    e.CanManageStaff(),
		CanViewFinance:    e.CanViewFinance(),
		CanManageFinance:  e.CanManageFinance(),
		CanViewPayroll:    e.CanViewPayroll(),
		CanManagePayroll:  e.CanManagePayroll(),
		CanViewUsers:      e.CanViewUsers(),
		CanManageUsers:    e.CanManageUsers(),
		CanViewReports:    e.CanViewReports(),
		CanManageReports:  e.CanManageReports(),
		CanViewSettings:   e.CanViewSettings(),
		CanManageSettings: e.CanManageSettings(),
		CanViewDatabase:   e.CanViewDatabase(),
		CanManageDatabase: e.CanManageDatabase(),
	}
	if e.user != nil {
		c.Role = e.user.Role
	}
	return c
}
