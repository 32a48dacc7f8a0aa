package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role, active bool) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	u := &domain.User{
		ID:           "id-" + username,
		Username:     username,
		FullName:     username,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     active,
	}
	if _, err := repo.Create(context.Background(), u); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return u
}

func newTestAuthService() (*AuthService, *stubUserRepo, *stubSessionStore) {
	repo := newStubUserRepo()
	sessions := newStubSessionStore()
	return NewAuthService(repo, sessions, "secret", time.Hour, zerolog.Nop()), repo, sessions
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "carol", "s3cretpass", domain.RoleDoctor, true)

	res, err := svc.Login(context.Background(), "carol", "s3cretpass")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Token == "" || res.SessionID == "" {
		t.Fatalf("expected token and session, got %+v", res)
	}
	if res.User == nil || res.User.Username != "carol" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
	if _, ok := sessions.sessions[res.SessionID]; !ok {
		t.Fatalf("expected session %s to be stored", res.SessionID)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(res.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.RoleDoctor) {
		t.Fatalf("expected role doctor, got %v", claims["role"])
	}
	if claims["sid"] != res.SessionID || claims["sub"] != "id-carol" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "dave", "goodpassword", domain.RoleNurse, true)

	if _, err := svc.Login(context.Background(), "dave", "badpassword"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownUserLooksLikeBadPassword(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.Login(context.Background(), "ghost", "whatever1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "erin", "password99", domain.RoleAdmin, false)

	if _, err := svc.Login(context.Background(), "erin", "password99"); !errors.Is(err, domain.ErrAccountInactive) {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("inactive login must not create a session")
	}
}

func TestAuthService_Resolve(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "frank", "password99", domain.RoleAccountant, true)

	res, err := svc.Login(context.Background(), "frank", "password99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sid, user, err := svc.Resolve(context.Background(), res.Token)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if sid != res.SessionID || user.Username != "frank" {
		t.Fatalf("unexpected resolve result: %s %+v", sid, user)
	}
}

func TestAuthService_Resolve_AfterLogout(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "gina", "password99", domain.RoleReceptionist, true)

	res, _ := svc.Login(context.Background(), "gina", "password99")
	if err := svc.Logout(context.Background(), res.SessionID); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, _, err := svc.Resolve(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated after logout, got %v", err)
	}
}

func TestAuthService_Resolve_RejectsForeignSignature(t *testing.T) {
	svc, repo, _ := newTestAuthService()
	seedUser(t, repo, "hank", "password99", domain.RoleDoctor, true)
	res, _ := svc.Login(context.Background(), "hank", "password99")

	other := NewAuthService(repo, newStubSessionStore(), "other-secret", time.Hour, zerolog.Nop())
	if _, _, err := other.Resolve(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, _, err := svc.Resolve(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for garbage, got %v", err)
	}
}

func TestAuthService_Resolve_RejectsSnapshotAfterFailedRevocation(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "ivy", "password99", domain.RoleAdmin, true)
	users := NewUserService(repo, sessions, nil, zerolog.Nop())

	res, err := svc.Login(context.Background(), "ivy", "password99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	sessions.revokeErr = errors.New("redis: connection refused")
	inactive := false
	if _, err := users.Update(context.Background(), admin, "id-ivy", ports.UpdateUserInput{IsActive: &inactive}); err == nil {
		t.Fatalf("expected update to report the revocation failure")
	}

	if _, _, err := svc.Resolve(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for a deactivated user, got %v", err)
	}
	if _, ok := sessions.sessions[res.SessionID]; ok {
		t.Fatalf("expected stale session %s to be dropped", res.SessionID)
	}
}

func TestAuthService_Resolve_RejectsDemotedSnapshot(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "jade", "password99", domain.RoleAdmin, true)
	res, _ := svc.Login(context.Background(), "jade", "password99")

	// Demote behind the session store's back.
	repo.users["id-jade"].Role = domain.RoleNurse
	repo.users["id-jade"].Permissions = []domain.Permission{domain.PermViewPatients}

	if _, _, err := svc.Resolve(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(sessions.sessions) != 0 {
		t.Fatalf("expected demoted session to be dropped")
	}
}

func TestAuthService_Login_RacingDeactivation(t *testing.T) {
	svc, repo, sessions := newTestAuthService()
	seedUser(t, repo, "kim", "password99", domain.RoleDoctor, true)

	// The account is deactivated between the credential check and the
	// session write; its revocation ran before the session existed.
	sessions.afterCreate = func() {
		sessions.afterCreate = nil
		repo.users["id-kim"].IsActive = false
	}

	res, err := svc.Login(context.Background(), "kim", "password99")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, _, err := svc.Resolve(context.Background(), res.Token); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
