package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// SettingsRepository stores the single clinic settings document.
type SettingsRepository interface {
	// Get returns domain.ErrNotFound until settings are first saved.
	Get(ctx context.Context) (*domain.Settings, error)
	Save(ctx context.Context, s *domain.Settings) error
}

type SettingsService interface {
	Get(ctx context.Context) (*domain.Settings, error)
	Update(ctx context.Context, actor Actor, s domain.Settings) (*domain.Settings, error)
}
