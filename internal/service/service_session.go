// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/models"
)

// sessionService issues and verifies the signed admin session tokens kept in
// the session cookie.
type sessionService struct {
	// signKey is the HMAC secret used to sign and verify tokens.
	signKey string

	// issuer is the "iss" claim. Tokens from another issuer are rejected.
	issuer string

	duration time.Duration

	logger *logger.Logger
}

func NewSessionService(cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		signKey:  cfg.SessionSignKey,
		issuer:   cfg.SessionIssuer,
		duration: cfg.SessionDuration,
		logger:   logger,
	}
}

// Issue signs a token whose subject is the admin id.
func (s *sessionService) Issue(ctx context.Context, admin models.Admin) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, admin.ID, s.duration, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("error issuing session token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}
	return token, nil
}

// Parse verifies signature, issuer and expiry. Every failure is reported as
// ErrSessionExpiredOrInvalid.
func (s *sessionService) Parse(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("session token rejected")
		return models.Token{}, ErrSessionExpiredOrInvalid
	}
	return token, nil
}
