package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vpetrenko/reelsync/internal/logger"
)

type settingsRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *settingsRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	if s.DB == nil || s.DB.DB == nil {
		return "", fmt.Errorf("failed to get setting: %w", ErrStoreNotInitialised)
	}

	var value string
	err := s.DB.QueryRowContext(ctx, selectSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("setting %q: %w", key, ErrSettingNotFound)
	}
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Get").
			Str("key", key).
			Msg("failed to query setting")
		return "", fmt.Errorf("failed to get setting %q: %w", key, err)
	}

	return value, nil
}

func (s *settingsRepository) Put(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	if s.DB == nil || s.DB.DB == nil {
		return fmt.Errorf("failed to put setting: %w", ErrStoreNotInitialised)
	}

	if _, err := s.DB.ExecContext(ctx, upsertSetting, key, value); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Put").
			Str("key", key).
			Msg("failed to upsert setting")
		return fmt.Errorf("failed to put setting %q: %w", key, err)
	}

	return nil
}

func (s *settingsRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	if s.DB == nil || s.DB.DB == nil {
		return fmt.Errorf("failed to delete setting: %w", ErrStoreNotInitialised)
	}

	if _, err := s.DB.ExecContext(ctx, deleteSetting, key); err != nil {
		log.Err(err).
			Str("func", "settingsRepository.Delete").
			Str("key", key).
			Msg("failed to delete setting")
		return fmt.Errorf("failed to delete setting %q: %w", key, err)
	}

	return nil
}
