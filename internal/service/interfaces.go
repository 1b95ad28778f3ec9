// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ask-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// QuestionService drives the question lifecycle and the paginated listing.
type QuestionService interface {
	Submit(ctx context.Context, submission models.QuestionSubmission) (models.Question, error)
	Answer(ctx context.Context, id int64, answer string) error
	Edit(ctx context.Context, edit models.QuestionEdit) error
	Approve(ctx context.Context, id int64) error
	Reject(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context, confirmationPhrase string) (int64, error)
	Get(ctx context.Context, id int64) (models.Question, error)
	List(ctx context.Context, request models.ListRequest) (models.QuestionPage, error)
	Stats(ctx context.Context) (models.QuestionStats, error)
}

type SettingsService interface {
	Get(ctx context.Context) (models.Settings, error)
	SetModeration(ctx context.Context, enabled bool) error
	Bootstrap(ctx context.Context) error
}

// AdminService manages the single admin identity.
type AdminService interface {
	Bootstrap(ctx context.Context) (models.Admin, error)
	Profile(ctx context.Context) (models.Admin, error)
	Authenticate(ctx context.Context, request models.LoginRequest) (models.Admin, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) error
	UpdateCredentials(ctx context.Context, update models.CredentialsUpdate) error

	// ResetCredentials replaces the admin username and password without the
	// current password. It is reserved for operator tooling.
	ResetCredentials(ctx context.Context, username, password string) error
}

type SessionService interface {
	Issue(ctx context.Context, admin models.Admin) (models.Token, error)
	Parse(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PasswordHasher hashes and verifies admin passwords. Compare returns a
// non-nil error when the password does not match.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
