package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// UserRepository defines persistence for login accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
}
