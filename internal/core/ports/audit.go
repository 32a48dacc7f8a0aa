package ports

import (
	"context"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	Recent(ctx context.Context, limit int) ([]*domain.AuditEntry, error)
}

// AuditRecorder accepts entries without blocking the caller on storage.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
