package domain

import "fmt"

// Permission is a fine-grained capability tag. Tag spelling is shared with
// the front end, so the string values are part of the API contract.
type Permission string

const (
	PermViewPatients   Permission = "view_patients"
	PermManagePatients Permission = "manage_patients"
	PermViewStaff      Permission = "view_staff"
	PermManageStaff    Permission = "manage_staff"
	PermViewFinance    Permission = "view_finance"
	PermManageFinance  Permission = "manage_finance"
	PermViewPayroll    Permission = "view_payroll"
	PermManagePayroll  Permission = "manage_payroll"
	PermViewUsers      Permission = "view_users"
	PermManageUsers    Permission = "manage_users"
	PermViewReports    Permission = "view_reports"
	PermManageReports  Permission = "manage_reports"
	PermViewSettings   Permission = "view_settings"
	PermManageSettings Permission = "manage_settings"
	PermViewDatabase   Permission = "view_database"
	PermManageDatabase Permission = "manage_database"
)

// permissionCatalog is ordered by domain area, view before manage.
var permissionCatalog = []Permission{
	PermViewPatients, PermManagePatients,
	PermViewStaff, PermManageStaff,
	PermViewFinance, PermManageFinance,
	PermViewPayroll, PermManagePayroll,
	PermViewUsers, PermManageUsers,
	PermViewReports, PermManageReports,
	PermViewSettings, PermManageSettings,
	PermViewDatabase, PermManageDatabase,
}

var permissionIndex = func() map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(permissionCatalog))
	for _, p := range permissionCatalog {
		m[p] = struct{}{}
	}
	return m
}()

// Permissions returns the full catalog.
func Permissions() []Permission {
	out := make([]Permission, len(permissionCatalog))
	copy(out, permissionCatalog)
	return out
}

// Valid reports whether p is part of the catalog.
func (p Permission) Valid() bool {
	_, ok := permissionIndex[p]
	return ok
}

func (p Permission) String() string { return string(p) }

// ParsePermissions converts raw tags into catalog permissions, dropping
// duplicates. Unknown tags are rejected with ErrInvalidInput.
func ParsePermissions(tags []string) ([]Permission, error) {
	out := make([]Permission, 0, len(tags))
	seen := make(map[Permission]struct{}, len(tags))
	for _, t := range tags {
		p := Permission(t)
		if !p.Valid() {
			return nil, fmt.Errorf("%w: unknown permission %q", ErrInvalidInput, t)
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, nil
}
