package ports

import (
	"context"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

type ReportService interface {
	Summary(ctx context.Context, from, to time.Time) (*domain.Report, error)
}

// DatabaseAdmin exposes maintenance operations on the backing store.
type DatabaseAdmin interface {
	CollectionCounts(ctx context.Context) (map[string]int64, error)
	EnsureIndexes(ctx context.Context) error
}
