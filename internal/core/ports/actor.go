package ports

import "github.com/carepoint/clinic-admin/internal/core/domain"

// Actor identifies who performs a mutation, for attribution and audit.
type Actor struct {
	ID       string
	Username string
}

// ActorOf builds an Actor from a session user; nil yields the zero Actor.
func ActorOf(u *domain.User) Actor {
	if u == nil {
		return Actor{}
	}
	return Actor{ID: u.ID, Username: u.Username}
}
