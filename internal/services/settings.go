package services

import (
	"context"
	"fmt"
	"time"

	"talktrack/internal/domain"
)

type settingsService struct {
	settingsRepo   domain.SettingsRepository
	contextTimeout time.Duration
}

func NewSettingsService(settingsRepo domain.SettingsRepository, timeout time.Duration) domain.SettingsService {
	return &settingsService{settingsRepo: settingsRepo, contextTimeout: timeout}
}

func (s *settingsService) GetSettings(ctx context.Context) (domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return domain.DefaultSettings(), fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings replaces the stored settings after validation.
func (s *settingsService) UpdateSettings(ctx context.Context, settings domain.Settings) (domain.Settings, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := domain.InvalidInput(domain.SettingsProblems(settings)); err != nil {
		return domain.Settings{}, err
	}
	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return domain.Settings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}
