// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/models"
)

type settingsService struct {
	settingRepository store.SettingRepository

	logger *logger.Logger
}

func NewSettingsService(settingRepository store.SettingRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingRepository: settingRepository,
		logger:            logger,
	}
}

func (s *settingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.settingRepository.Load(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error loading settings")
		return models.Settings{}, fmt.Errorf("error loading settings: %w", err)
	}
	return settings, nil
}

// SetModeration toggles moderation for future submissions. Existing approval
// flags are left as they are.
func (s *settingsService) SetModeration(ctx context.Context, enabled bool) error {
	log := logger.FromContext(ctx)

	settings, err := s.settingRepository.Load(ctx)
	if err != nil {
		log.Err(err).Msg("error loading settings")
		return fmt.Errorf("error loading settings: %w", err)
	}

	settings.ModerationEnabled = enabled
	if err = s.settingRepository.Save(ctx, settings); err != nil {
		log.Err(err).Bool("moderation_enabled", enabled).Msg("error saving settings")
		return fmt.Errorf("error saving settings: %w", err)
	}

	log.Info().Bool("moderation_enabled", enabled).Msg("moderation setting changed")
	return nil
}

// Bootstrap writes moderation_enabled=false when the row is missing.
func (s *settingsService) Bootstrap(ctx context.Context) error {
	log := logger.FromContext(ctx)

	value, err := s.settingRepository.Get(ctx, models.SettingModerationEnabled, "")
	if err != nil {
		log.Err(err).Msg("error reading moderation setting")
		return fmt.Errorf("error reading moderation setting: %w", err)
	}
	if value != "" {
		return nil
	}

	if err = s.settingRepository.Set(ctx, models.SettingModerationEnabled, strconv.FormatBool(false)); err != nil {
		log.Err(err).Msg("error writing default moderation setting")
		return fmt.Errorf("error writing default moderation setting: %w", err)
	}

	log.Debug().Msg("moderation setting initialised to false")
	return nil
}
