package ports

import (
	"context"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// SessionStore holds the user record for each live session. The stored
// record is what permission checks run against for the session lifetime.
type SessionStore interface {
	Create(ctx context.Context, id string, user *domain.User, ttl time.Duration) error
	// Get returns domain.ErrSessionNotFound once a session expires or is revoked.
	Get(ctx context.Context, id string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// DeleteForUser revokes every session belonging to userID.
	DeleteForUser(ctx context.Context, userID string) error
}
