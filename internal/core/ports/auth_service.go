package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// LoginResult is returned on successful authentication.
type LoginResult struct {
	Token     string
	SessionID string
	User      *domain.User
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Resolve validates a bearer token and returns the session's user record.
	Resolve(ctx context.Context, token string) (sessionID string, user *domain.User, err error)
}
