package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

func TestStaffService_Create(t *testing.T) {
	repo := &stubStaffRepo{}
	svc := NewStaffService(repo, nil, zerolog.Nop())

	m, err := svc.Create(context.Background(), admin, ports.CreateStaffInput{
		FullName: "Lia Ortiz", Position: "nurse", Department: "icu", BaseSalaryCents: 280000,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if m.HiredAt.IsZero() {
		t.Fatalf("expected hired_at to default to now")
	}

	icu, _ := svc.List(context.Background(), "icu")
	if len(icu) != 1 {
		t.Fatalf("expected one icu member, got %d", len(icu))
	}

	if _, err := svc.Create(context.Background(), admin, ports.CreateStaffInput{FullName: "X", Position: "p", Department: "d", BaseSalaryCents: -1}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
