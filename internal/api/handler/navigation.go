package handler

import (
	"github.com/carepoint/clinic-admin/internal/core/access"
	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// MenuItem is one entry of the navigation menu rendered by the front end.
type MenuItem struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type menuEntry struct {
	item     MenuItem
	requires access.Requirement
}

var menu = []menuEntry{
	{MenuItem{"dashboard", "Dashboard", "/dashboard"}, access.Requirement{}},
	{MenuItem{"patients", "Patients", "/patients"}, access.Permission(domain.PermViewPatients)},
	{MenuItem{"staff", "Staff", "/staff"}, access.Permission(domain.PermViewStaff)},
	{MenuItem{"payroll", "Payroll", "/payroll"}, access.Permission(domain.PermViewPayroll)},
	{MenuItem{"finance", "Finance", "/finance"}, access.Permission(domain.PermViewFinance)},
	{MenuItem{"reports", "Reports", "/reports"}, access.Permission(domain.PermViewReports)},
	{MenuItem{"users", "Users", "/users"}, access.Permission(domain.PermViewUsers)},
	{MenuItem{"settings", "Settings", "/settings"}, access.Permission(domain.PermViewSettings)},
	{MenuItem{"database", "Database", "/database"}, access.Permission(domain.PermViewDatabase)},
}

// Navigation returns the menu entries the gate lets through, in menu order.
func Navigation(g access.Gate) []MenuItem {
	out := make([]MenuItem, 0, len(menu))
	for i := range menu {
		if item := access.Gated(g, menu[i].requires, &menu[i].item); item != nil {
			out = append(out, *item)
		}
	}
	return out
}
