package ports

import (
	"context"
	"time"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

// StaffRepository defines persistence operations for staff records.
type StaffRepository interface {
	Create(ctx context.Context, s *domain.StaffMember) error
	FindByID(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context, department string) ([]*domain.StaffMember, error)
}

// CreateStaffInput carries a new staff record.
type CreateStaffInput struct {
	FullName        string
	Position        string
	Department      string
	Phone           string
	BaseSalaryCents int64
	HiredAt         time.Time
}

type StaffService interface {
	Create(ctx context.Context, actor Actor, in CreateStaffInput) (*domain.StaffMember, error)
	Get(ctx context.Context, id string) (*domain.StaffMember, error)
	List(ctx context.Context, department string) ([]*domain.StaffMember, error)
}
