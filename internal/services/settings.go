package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/espresso-tracker/internal/models"
)

//go:generate mockgen -source=settings.go -destination=settings_mock.go -package=services

// SettingsStore persists the single settings row of each user.
type SettingsStore interface {
	Ensure(ctx context.Context, userID uuid.UUID) error
	Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Lock(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error)
	Update(ctx context.Context, settings *models.UserSettings) error
}

// SettingsService manages per-user default equipment.
type SettingsService struct {
	settings SettingsStore
	tx       Transactor
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settings SettingsStore, tx Transactor) *SettingsService {
	return &SettingsService{settings: settings, tx: tx}
}

// Get returns the user's settings, creating an empty row on first access.
func (s *SettingsService) Get(ctx context.Context, userID uuid.UUID) (*models.UserSettings, error) {
	var settings *models.UserSettings

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		settings, err = getOrCreateSettings(ctx, s.settings, userID)
		return err
	})
	if err != nil {
		logFailure("failed to get settings", err, "user_id", userID)
		return nil, err
	}

	return settings, nil
}

// Update applies the fields present in patch. Blank defaults are stored as
// null, i.e. not configured.
func (s *SettingsService) Update(ctx context.Context, userID uuid.UUID, patch models.SettingsPatch) (*models.UserSettings, error) {
	var settings *models.UserSettings

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.settings.Ensure(ctx, userID); err != nil {
			return err
		}

		var err error
		settings, err = s.settings.Lock(ctx, userID)
		if err != nil {
			return err
		}
		if settings == nil {
			return fmt.Errorf("settings of user %s missing after ensure", userID)
		}

		if patch.DefaultMachine.Set {
			settings.DefaultMachine = trimmed(patch.DefaultMachine.Value)
		}
		if patch.DefaultGrinder.Set {
			settings.DefaultGrinder = trimmed(patch.DefaultGrinder.Value)
		}

		if err := s.settings.Update(ctx, settings); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("settings of user %s vanished during update: %w", userID, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		logFailure("failed to update settings", err, "user_id", userID)
		return nil, err
	}

	return settings, nil
}

// getOrCreateSettings returns the user's settings row, inserting an empty one
// when absent. Concurrent callers converge on the same row.
func getOrCreateSettings(ctx context.Context, store SettingsStore, userID uuid.UUID) (*models.UserSettings, error) {
	if err := store.Ensure(ctx, userID); err != nil {
		return nil, err
	}

	settings, err := store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, fmt.Errorf("settings of user %s missing after ensure", userID)
	}
	return settings, nil
}
