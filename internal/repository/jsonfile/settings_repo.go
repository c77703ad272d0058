package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"talktrack/internal/domain"
)

type settingsRepository struct {
	store *Store
}

func NewSettingsRepository(store *Store) domain.SettingsRepository {
	return &settingsRepository{store: store}
}

// Get returns the saved settings with defaults for anything missing or invalid.
func (r *settingsRepository) Get(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	settings := domain.DefaultSettings()
	raw, err := os.ReadFile(r.store.settingsPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return domain.Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	// Unmarshal over the defaults so fields added after the file was written keep their default.
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.Settings{}, fmt.Errorf("decode settings file: %w", err)
	}
	return normalizeSettings(settings), nil
}

func (r *settingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	raw, err := json.MarshalIndent(normalizeSettings(settings), "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings file: %w", err)
	}
	return writeAtomic(r.store.settingsPath, raw)
}

func normalizeSettings(s domain.Settings) domain.Settings {
	def := domain.DefaultSettings()
	if !s.DateFormat.Valid() {
		s.DateFormat = def.DateFormat
	}
	if s.MaxEventsPerMonth < 0 {
		s.MaxEventsPerMonth = 0
	}
	if s.MaxEventsPerYear < 0 {
		s.MaxEventsPerYear = 0
	}
	return s
}
