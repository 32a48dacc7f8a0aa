package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

const minPasswordLen = 8

// UserService manages login accounts. Any change to an account revokes its
// live sessions so the next request re-reads the new record.
type UserService struct {
	repo     ports.UserRepository
	sessions ports.SessionStore
	audit    ports.AuditRecorder
	log      zerolog.Logger
}

func NewUserService(repo ports.UserRepository, sessions ports.SessionStore, audit ports.AuditRecorder, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, sessions: sessions, audit: audit, log: log}
}

func (s *UserService) Create(ctx context.Context, actor ports.Actor, in ports.CreateUserInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.FullName == "" {
		return nil, fmt.Errorf("%w: username and full_name are required", domain.ErrInvalidInput)
	}
	role := domain.Role(in.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}
	perms, err := domain.ParsePermissions(in.Permissions)
	if err != nil {
		return nil, err
	}
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           ulid.Make().String(),
		Username:     username,
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         role,
		Permissions:  perms,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(actor, "create", created.ID)
	s.log.Info().Str("user_id", created.ID).Str("role", string(role)).Str("by", actor.ID).Msg("user created")
	return created, nil
}

func (s *UserService) Update(ctx context.Context, actor ports.Actor, id string, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.FullName != nil {
		if *in.FullName == "" {
			return nil, fmt.Errorf("%w: full_name cannot be empty", domain.ErrInvalidInput)
		}
		user.FullName = *in.FullName
	}
	if in.Role != nil {
		role := domain.Role(*in.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = role
	}
	if in.Permissions != nil {
		perms, err := domain.ParsePermissions(*in.Permissions)
		if err != nil {
			return nil, err
		}
		user.Permissions = perms
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.Password != nil {
		hash, err := hashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	// The session snapshot is now stale; force a fresh login.
	if err := s.sessions.DeleteForUser(ctx, user.ID); err != nil {
		s.log.Error().Err(err).Str("user_id", user.ID).Msg("failed to revoke sessions")
		return nil, fmt.Errorf("revoke sessions: %w", err)
	}

	s.record(actor, "update", user.ID)
	s.log.Info().Str("user_id", user.ID).Bool("active", user.IsActive).Str("by", actor.ID).Msg("user updated")
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return nil
	}

	_, err = s.Create(ctx, ports.Actor{ID: "system", Username: "system"}, ports.CreateUserInput{
		Username: username,
		FullName: "Administrator",
		Password: password,
		Role:     string(domain.RoleAdmin),
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	s.log.Info().Str("username", username).Msg("bootstrap administrator created")
	return nil
}

func (s *UserService) record(actor ports.Actor, action, id string) {
	recordAudit(s.audit, actor, action, "user", id)
}

func hashPassword(password string) (string, error) {
	if len(password) < minPasswordLen {
		return "", fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
