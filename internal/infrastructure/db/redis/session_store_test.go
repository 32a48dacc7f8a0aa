package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/carepoint/clinic-admin/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func testUser(id string) *domain.User {
	return &domain.User{
		ID:           id,
		Username:     "user-" + id,
		PasswordHash: "$2a$10$hash",
		Role:         domain.RoleNurse,
		Permissions:  []domain.Permission{domain.PermViewPatients},
		IsActive:     true,
	}
}

func TestSessionKeys(t *testing.T) {
	if got := sessionKey("abc"); got != "session:abc" {
		t.Fatalf("unexpected session key: %s", got)
	}
	if got := userSessionsKey("u1"); got != "user_sessions:u1" {
		t.Fatalf("unexpected index key: %s", got)
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, "s1", testUser("u1"), time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}

	if ttl := mr.TTL("session:s1"); ttl != time.Hour {
		t.Fatalf("expected session ttl 1h, got %v", ttl)
	}
	if ttl := mr.TTL("user_sessions:u1"); ttl != time.Hour {
		t.Fatalf("expected index ttl 1h, got %v", ttl)
	}
	if ok, _ := mr.SIsMember("user_sessions:u1", "s1"); !ok {
		t.Fatalf("expected s1 in the user index")
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "u1" || got.Role != domain.RoleNurse || !got.IsActive {
		t.Fatalf("unexpected snapshot: %+v", got)
	}
	if len(got.Permissions) != 1 || got.Permissions[0] != domain.PermViewPatients {
		t.Fatalf("unexpected permissions: %v", got.Permissions)
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash must not be stored in the session")
	}
}

func TestSessionStore_Get_MissingAndExpired(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "nope"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	if err := store.Create(ctx, "s1", testUser("u1"), time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}
	mr.FastForward(2 * time.Minute)

	if _, err := store.Get(ctx, "s1"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected expired session to be gone, got %v", err)
	}
}

func TestSessionStore_Get_CorruptPayload(t *testing.T) {
	store, mr := newTestStore(t)
	if err := mr.Set("session:bad", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	_, err := store.Get(context.Background(), "bad")
	if err == nil || errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestSessionStore_Delete_Idempotent(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Create(ctx, "s1", testUser("u1"), time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, "s2", testUser("u1"), time.Hour); err != nil {
		t.Fatalf("create: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := store.Delete(ctx, "s1"); err != nil {
			t.Fatalf("delete #%d: %v", i+1, err)
		}
	}

	if mr.Exists("session:s1") {
		t.Fatalf("expected session:s1 to be deleted")
	}
	if ok, _ := mr.SIsMember("user_sessions:u1", "s1"); ok {
		t.Fatalf("expected s1 removed from the user index")
	}
	if _, err := store.Get(ctx, "s2"); err != nil {
		t.Fatalf("sibling session must survive: %v", err)
	}
}

func TestSessionStore_DeleteForUser(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	for _, sid := range []string{"a1", "a2", "a3"} {
		if err := store.Create(ctx, sid, testUser("u1"), time.Hour); err != nil {
			t.Fatalf("create %s: %v", sid, err)
		}
	}
	if err := store.Create(ctx, "b1", testUser("u2"), time.Hour); err != nil {
		t.Fatalf("create b1: %v", err)
	}

	if err := store.DeleteForUser(ctx, "u1"); err != nil {
		t.Fatalf("delete for user: %v", err)
	}

	for _, sid := range []string{"a1", "a2", "a3"} {
		if _, err := store.Get(ctx, sid); !errors.Is(err, domain.ErrSessionNotFound) {
			t.Fatalf("expected %s revoked, got %v", sid, err)
		}
	}
	if mr.Exists("user_sessions:u1") {
		t.Fatalf("expected the user index to be removed")
	}
	if _, err := store.Get(ctx, "b1"); err != nil {
		t.Fatalf("other user's session must survive: %v", err)
	}

	// Nothing left to revoke is not an error.
	if err := store.DeleteForUser(ctx, "u1"); err != nil {
		t.Fatalf("second revoke: %v", err)
	}
}

func TestSessionStore_DeleteForUser_Unreachable(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	if err := store.DeleteForUser(context.Background(), "u1"); err == nil {
		t.Fatalf("expected an error when redis is unreachable")
	}
}
