package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// CreateUserInput carries a new account.
type CreateUserInput struct {
	Username    string
	FullName    string
	Email       string
	Password    string
	Role        string
	Permissions []string
	IsActive    bool
}

// UpdateUserInput carries a partial update; nil fields are left unchanged.
type UpdateUserInput struct {
	FullName    *string
	Role        *string
	Permissions *[]string
	IsActive    *bool
	Password    *string
}

type UserService interface {
	Create(ctx context.Context, actor Actor, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor Actor, id string, in UpdateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// EnsureAdmin creates the first administrator when no accounts exist.
	EnsureAdmin(ctx context.Context, username, password string) error
}
