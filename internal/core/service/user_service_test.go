package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

var admin = ports.Actor{ID: "admin-1", Username: "root"}

func TestUserService_Create(t *testing.T) {
	repo := newStubUserRepo()
	audit := &stubAudit{}
	svc := NewUserService(repo, newStubSessionStore(), audit, zerolog.Nop())

	user, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
		Username:    "nina",
		FullName:    "Nina Nurse",
		Password:    "longenough",
		Role:        "nurse",
		Permissions: []string{"view_patients", "view_patients", "manage_patients"},
		IsActive:    true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == "" || user.PasswordHash == "longenough" {
		t.Fatalf("expected id and hashed password: %+v", user)
	}
	if len(user.Permissions) != 2 {
		t.Fatalf("expected duplicate permissions to collapse, got %v", user.Permissions)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "user:create" {
		t.Fatalf("unexpected audit trail: %v", got)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), newStubSessionStore(), nil, zerolog.Nop())

	cases := map[string]ports.CreateUserInput{
		"unknown role":       {Username: "a", FullName: "A", Password: "longenough", Role: "janitor"},
		"unknown permission": {Username: "a", FullName: "A", Password: "longenough", Role: "nurse", Permissions: []string{"fly"}},
		"short password":     {Username: "a", FullName: "A", Password: "short", Role: "nurse"},
		"missing username":   {FullName: "A", Password: "longenough", Role: "nurse"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), admin, in); !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUserService_Update_RevokesSessions(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewUserService(repo, sessions, nil, zerolog.Nop())

	user, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
		Username: "otto", FullName: "Otto", Password: "longenough", Role: "doctor", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_ = sessions.Create(context.Background(), "s1", user, 0)
	_ = sessions.Create(context.Background(), "s2", user, 0)

	inactive := false
	updated, err := svc.Update(context.Background(), admin, user.ID, ports.UpdateUserInput{IsActive: &inactive})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected user to be deactivated")
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected all sessions revoked, %d remain", len(sessions.sessions))
	}
	if len(sessions.revoked) != 1 || sessions.revoked[0] != user.ID {
		t.Fatalf("unexpected revocations: %v", sessions.revoked)
	}
}

func TestUserService_Update_RejectsUnknownPermission(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	svc := NewUserService(repo, sessions, nil, zerolog.Nop())
	user, _ := svc.Create(context.Background(), admin, ports.CreateUserInput{
		Username: "pia", FullName: "Pia", Password: "longenough", Role: "accountant", IsActive: true,
	})

	perms := []string{"view_finance", "launch_rockets"}
	if _, err := svc.Update(context.Background(), admin, user.ID, ports.UpdateUserInput{Permissions: &perms}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(sessions.revoked) != 0 {
		t.Fatalf("failed update must not revoke sessions")
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, newStubSessionStore(), nil, zerolog.Nop())

	if err := svc.EnsureAdmin(context.Background(), "root", "changeme123"); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "root2", "changeme123"); err != nil {
		t.Fatalf("second ensure admin: %v", err)
	}

	users, _ := repo.List(context.Background())
	if len(users) != 1 || users[0].Role != domain.RoleAdmin || !users[0].IsActive {
		t.Fatalf("expected exactly one active admin, got %+v", users)
	}
}

func TestUserService_Update_FailsWhenRevocationFails(t *testing.T) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	sessions.revokeErr = errors.New("redis: connection refused")
	audit := &stubAudit{}
	svc := NewUserService(repo, sessions, audit, zerolog.Nop())

	user, err := svc.Create(context.Background(), admin, ports.CreateUserInput{
		Username: "quinn", FullName: "Quinn", Password: "longenough", Role: "admin", IsActive: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inactive := false
	updated, err := svc.Update(context.Background(), admin, user.ID, ports.UpdateUserInput{IsActive: &inactive})
	if err == nil {
		t.Fatalf("expected revocation failure to surface, got user %+v", updated)
	}
	if !errors.Is(err, sessions.revokeErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "user:create" {
		t.Fatalf("failed update must not be audited as done: %v", got)
	}
}
