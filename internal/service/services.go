// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	QuestionService QuestionService
	SettingsService SettingsService
	AdminService    AdminService
	SessionService  SessionService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewFormValidator()
	hasher := utils.NewBcryptHasher(bcrypt.DefaultCost)

	return &Services{
		QuestionService: NewQuestionService(storages.QuestionRepository, storages.SettingRepository, validator, logger),
		SettingsService: NewSettingsService(storages.SettingRepository, logger),
		AdminService:    NewAdminService(storages.AdminRepository, hasher, validator, logger),
		SessionService:  NewSessionService(cfg.App, logger),
		AppInfoService:  appInfoService,
	}, nil
}
