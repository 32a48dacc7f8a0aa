package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

// AuthService implements login, logout and token resolution. The JWT only
// points at a session; the session record is authoritative.
type AuthService struct {
	users     ports.UserRepository
	sessions  ports.SessionStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 12 * time.Hour
	}
	return &AuthService{users: users, sessions: sessions, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

type sessionClaims struct {
	SessionID string      `json:"sid"`
	Role      domain.Role `json:"role"`
	jwt.RegisteredClaims
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	sid := uuid.NewString()
	if err := s.sessions.Create(ctx, sid, user, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	token, err := s.generateToken(sid, user)
	if err != nil {
		_ = s.sessions.Delete(ctx, sid)
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return &ports.LoginResult{Token: token, SessionID: sid, User: user}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return domain.ErrSessionNotFound
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (string, *domain.User, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid || claims.SessionID == "" {
		return "", nil, domain.ErrUnauthenticated
	}

	user, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return "", nil, domain.ErrUnauthenticated
		}
		return "", nil, err
	}
	if user.ID != claims.Subject {
		return "", nil, domain.ErrUnauthenticated
	}

	// A snapshot that no longer matches the stored record was missed by
	// revocation (a failed DeleteForUser, or a login racing an update).
	current, err := s.users.FindByID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.dropStale(ctx, claims.SessionID, user.ID)
			return "", nil, domain.ErrUnauthenticated
		}
		return "", nil, err
	}
	if !current.SameAccess(user) {
		s.dropStale(ctx, claims.SessionID, user.ID)
		return "", nil, domain.ErrUnauthenticated
	}
	return claims.SessionID, user, nil
}

func (s *AuthService) dropStale(ctx context.Context, sid, userID string) {
	if err := s.sessions.Delete(ctx, sid); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to drop stale session")
		return
	}
	s.log.Info().Str("user_id", userID).Msg("stale session dropped")
}

func (s *AuthService) generateToken(sid string, user *domain.User) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		SessionID: sid,
		Role:      user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
