// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/models"
)

// settingRepository stores settings as strings in a key/value table.
// Typed conversion happens only in Load and Save.
type settingRepository struct {
	*DB
	logger *logger.Logger
}

func NewSettingRepository(db *DB, logger *logger.Logger) SettingRepository {
	logger.Debug().Msg("creating setting repository")
	return &settingRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the stored value for key, or defaultValue when the key is
// absent.
func (r *settingRepository) Get(ctx context.Context, key, defaultValue string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingQuery(r.builder, key).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.Get").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return defaultValue, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*settingRepository.Get").Str("key", key).Msg("failed to read setting")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

// Set inserts or overwrites key.
func (r *settingRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.execInTx(ctx, "*settingRepository.Set", buildUpsertSettingQuery(r.builder, key, value))
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info().
		Str("func", "*settingRepository.Set").
		Str("key", key).
		Str("value", value).
		Msg("setting saved")

	return nil
}

// Load reads every known setting. Missing keys take their defaults.
func (r *settingRepository) Load(ctx context.Context) (models.Settings, error) {
	raw, err := r.Get(ctx, models.SettingModerationEnabled, strconv.FormatBool(false))
	if err != nil {
		return models.Settings{}, err
	}

	moderationEnabled, err := strconv.ParseBool(raw)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*settingRepository.Load").
			Str("key", models.SettingModerationEnabled).
			Str("value", raw).
			Msg("stored setting is not a boolean")
		return models.Settings{}, fmt.Errorf("%w: %s=%q", ErrInvalidSettingValue, models.SettingModerationEnabled, raw)
	}

	return models.Settings{ModerationEnabled: moderationEnabled}, nil
}

// Save writes every field of settings.
func (r *settingRepository) Save(ctx context.Context, settings models.Settings) error {
	return r.Set(ctx, models.SettingModerationEnabled, strconv.FormatBool(settings.ModerationEnabled))
}
