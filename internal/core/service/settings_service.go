package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/carepoint/clinic-admin/internal/core/domain"
	"github.com/carepoint/clinic-admin/internal/core/ports"
)

type SettingsService struct {
	repo  ports.SettingsRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewSettingsService(repo ports.SettingsRepository, audit ports.AuditRecorder, log zerolog.Logger) *SettingsService {
	return &SettingsService{repo: repo, audit: audit, log: log}
}

// Get returns the saved settings, or the defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context) (*domain.Settings, error) {
	st, err := s.repo.Get(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		def := domain.DefaultSettings()
		return &def, nil
	}
	return st, err
}

func (s *SettingsService) Update(ctx context.Context, actor ports.Actor, in domain.Settings) (*domain.Settings, error) {
	if strings.TrimSpace(in.ClinicName) == "" {
		return nil, fmt.Errorf("%w: clinic_name is required", domain.ErrInvalidInput)
	}
	if !isCurrencyCode(in.Currency) {
		return nil, fmt.Errorf("%w: currency must be a 3-letter code", domain.ErrInvalidInput)
	}
	if _, err := time.LoadLocation(in.Timezone); err != nil || in.Timezone == "" {
		return nil, fmt.Errorf("%w: unknown timezone %q", domain.ErrInvalidInput, in.Timezone)
	}

	in.Currency = strings.ToUpper(in.Currency)
	in.UpdatedBy = actor.ID
	in.UpdatedAt = time.Now().UTC()
	if err := s.repo.Save(ctx, &in); err != nil {
		return nil, err
	}

	recordAudit(s.audit, actor, "update", "settings", "")
	s.log.Info().Str("by", actor.ID).Msg("settings updated")
	return &in, nil
}

func isCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
