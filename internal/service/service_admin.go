// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/internal/validators"
	"github.com/MKhiriev/go-ask-me/models"
)

// Credentials and profile of the admin created on first boot.
const (
	DefaultAdminUsername    = "admin"
	DefaultAdminPassword    = "admin"
	DefaultAdminDisplayName = "John"

	DefaultAdminIntroduction = "Hi there! I'm John, and this is my personal Q&A site. " +
		"I've created this space to interact with friends, colleagues, and anyone interested in connecting.\n\n" +
		"Feel free to ask me anything you're curious about - whether it's about my work, hobbies, opinions, " +
		"or just something you'd like my perspective on. I'll do my best to answer your questions!"
)

// adminService is the concrete implementation of AdminService. Passwords are
// only ever handled through hasher and are never logged.
type adminService struct {
	adminRepository store.AdminRepository
	hasher          PasswordHasher
	validator       validators.Validator

	// dummyHash is compared against on unknown usernames so that both login
	// failures cost one hash comparison.
	dummyHash func() (string, error)

	logger *logger.Logger
}

const dummyPassword = "go-ask-me: no such admin"

func NewAdminService(adminRepository store.AdminRepository, hasher PasswordHasher, validator validators.Validator, logger *logger.Logger) AdminService {
	return &adminService{
		adminRepository: adminRepository,
		hasher:          hasher,
		validator:       validator,
		dummyHash:       sync.OnceValues(func() (string, error) { return hasher.Hash(dummyPassword) }),
		logger:          logger,
	}
}

// Bootstrap returns the existing admin or creates the default one.
func (a *adminService) Bootstrap(ctx context.Context) (models.Admin, error) {
	log := logger.FromContext(ctx)

	admin, err := a.adminRepository.Get(ctx)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, store.ErrAdminNotFound) {
		log.Err(err).Msg("error looking up admin")
		return models.Admin{}, fmt.Errorf("error looking up admin: %w", err)
	}

	hash, err := a.hasher.Hash(DefaultAdminPassword)
	if err != nil {
		log.Err(err).Msg("error hashing default admin password")
		return models.Admin{}, fmt.Errorf("error hashing default admin password: %w", err)
	}

	admin, err = a.adminRepository.Create(ctx, models.Admin{
		Username:     DefaultAdminUsername,
		PasswordHash: hash,
		DisplayName:  DefaultAdminDisplayName,
		Introduction: DefaultAdminIntroduction,
	})
	if err != nil {
		log.Err(err).Msg("error creating default admin")
		return models.Admin{}, fmt.Errorf("error creating default admin: %w", err)
	}

	log.Warn().Str("username", admin.Username).Msg("default admin created; change its password")
	return admin, nil
}

func (a *adminService) Profile(ctx context.Context) (models.Admin, error) {
	admin, err := a.adminRepository.Get(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error loading admin profile")
		return models.Admin{}, fmt.Errorf("error loading admin profile: %w", err)
	}
	return admin, nil
}

// Authenticate checks a login attempt. An unknown username and a wrong
// password are both reported as ErrInvalidCredentials.
func (a *adminService) Authenticate(ctx context.Context, request models.LoginRequest) (models.Admin, error) {
	log := logger.FromContext(ctx)

	request.Username = strings.TrimSpace(request.Username)
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.Admin{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	admin, err := a.adminRepository.FindByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrAdminNotFound) {
		log.Warn().Str("username", request.Username).Msg("login attempt for unknown username")
		if hash, hashErr := a.dummyHash(); hashErr == nil {
			_ = a.hasher.Compare(hash, request.Password)
		}
		return models.Admin{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("admin search by username failed")
		return models.Admin{}, fmt.Errorf("admin search by username failed: %w", err)
	}

	if err = a.verifyPassword(admin, request.Password); err != nil {
		log.Warn().Str("username", request.Username).Msg("login attempt with wrong password")
		return models.Admin{}, err
	}

	return admin, nil
}

func (a *adminService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) error {
	log := logger.FromContext(ctx)

	update.DisplayName = strings.TrimSpace(update.DisplayName)
	update.Introduction = strings.TrimSpace(update.Introduction)

	if err := a.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := a.adminRepository.UpdateProfile(ctx, update.AdminID, update.DisplayName, update.Introduction); err != nil {
		log.Err(err).Int64("admin_id", update.AdminID).Msg("error updating admin profile")
		return fmt.Errorf("error updating admin profile: %w", err)
	}
	return nil
}

// UpdateCredentials changes the username and, when NewPassword is set, the
// password. CurrentPassword must match the stored hash.
func (a *adminService) UpdateCredentials(ctx context.Context, update models.CredentialsUpdate) error {
	log := logger.FromContext(ctx)

	update.Username = strings.TrimSpace(update.Username)
	if err := a.validator.Validate(ctx, update); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	admin, err := a.adminRepository.GetByID(ctx, update.AdminID)
	if err != nil {
		log.Err(err).Int64("admin_id", update.AdminID).Msg("error loading admin")
		return fmt.Errorf("error loading admin: %w", err)
	}

	if err = a.verifyPassword(admin, update.CurrentPassword); err != nil {
		log.Warn().Int64("admin_id", admin.ID).Msg("credentials change refused: wrong current password")
		return err
	}

	return a.replaceCredentials(ctx, admin, update.Username, update.NewPassword)
}

func (a *adminService) ResetCredentials(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	admin, err := a.adminRepository.Get(ctx)
	if err != nil {
		log.Err(err).Msg("error loading admin")
		return fmt.Errorf("error loading admin: %w", err)
	}

	update := models.CredentialsUpdate{
		AdminID:     admin.ID,
		Username:    strings.TrimSpace(username),
		NewPassword: password,
	}
	if update.NewPassword == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInput, validators.ErrInvalidPassword)
	}
	err = a.validator.Validate(ctx, update, validators.FieldAdminID, validators.FieldUsername, validators.FieldNewPassword)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return a.replaceCredentials(ctx, admin, update.Username, update.NewPassword)
}

// replaceCredentials enforces username uniqueness before the rename and
// keeps the old hash when newPassword is empty.
func (a *adminService) replaceCredentials(ctx context.Context, admin models.Admin, username, newPassword string) error {
	log := logger.FromContext(ctx)

	if username != admin.Username {
		_, err := a.adminRepository.FindByUsername(ctx, username)
		switch {
		case err == nil:
			return store.ErrUsernameTaken
		case !errors.Is(err, store.ErrAdminNotFound):
			log.Err(err).Msg("admin search by username failed")
			return fmt.Errorf("admin search by username failed: %w", err)
		}
	}

	hash := admin.PasswordHash
	if newPassword != "" {
		var err error
		if hash, err = a.hasher.Hash(newPassword); err != nil {
			log.Err(err).Int64("admin_id", admin.ID).Msg("error hashing new password")
			return fmt.Errorf("error hashing new password: %w", err)
		}
	}

	if err := a.adminRepository.UpdateCredentials(ctx, admin.ID, username, hash); err != nil {
		log.Err(err).Int64("admin_id", admin.ID).Msg("error updating admin credentials")
		return fmt.Errorf("error updating admin credentials: %w", err)
	}

	log.Info().Int64("admin_id", admin.ID).Bool("password_changed", newPassword != "").Msg("admin credentials updated")
	return nil
}

func (a *adminService) verifyPassword(admin models.Admin, password string) error {
	err := a.hasher.Compare(admin.PasswordHash, password)
	if err == nil {
		return nil
	}
	if errors.Is(err, utils.ErrPasswordMismatch) {
		return ErrInvalidCredentials
	}
	return fmt.Errorf("error verifying password: %w", err)
}
