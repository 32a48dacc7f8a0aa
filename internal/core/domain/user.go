package domain

import "time"

// Role is a coarse job-function tag. The set is closed; anything outside
// Roles() is treated as unknown and grants nothing.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleDoctor       Role = "doctor"
	RoleNurse        Role = "nurse"
	RoleReceptionist Role = "receptionist"
	RoleAccountant   Role = "accountant"
)

var roles = []Role{RoleAdmin, RoleDoctor, RoleNurse, RoleReceptionist, RoleAccountant}

// Roles returns the role catalog in a stable order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// Valid reports whether r belongs to the role catalog.
func (r Role) Valid() bool {
	for _, known := range roles {
		if r == known {
			return true
		}
	}
	return false
}

func (r Role) String() string { return string(r) }

// User models an authenticated actor in the system.
//
// Permissions are the tags explicitly granted to this user; they are ignored
// for RoleAdmin, which implicitly holds the whole catalog.
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	FullName     string       `json:"full_name"`
	Email        string       `json:"email,omitempty"`
	PasswordHash string       `json:"-"`
	Role         Role         `json:"role"`
	Permissions  []Permission `json:"permissions"`
	IsActive     bool         `json:"is_active"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Clone returns a deep copy so callers can hand out a record without
// sharing the permissions slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Permissions != nil {
		c.Permissions = make([]Permission, len(u.Permissions))
		copy(c.Permissions, u.Permissions)
	}
	return &c
}

// SameAccess reports whether two snapshots of a user grant the same access:
// same activity flag, role and permission set.
func (u *User) SameAccess(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	if u.ID != other.ID || u.IsActive != other.IsActive || u.Role != other.Role {
		return false
	}
	if len(u.Permissions) != len(other.Permissions) {
		return false
	}
	held := make(map[Permission]struct{}, len(u.Permissions))
	for _, p := range u.Permissions {
		held[p] = struct{}{}
	}
	for _, p := range other.Permissions {
		if _, ok := held[p]; !ok {
			return false
		}
	}
	return true
}
