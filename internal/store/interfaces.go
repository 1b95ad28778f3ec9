// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ask-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// QuestionRepository persists questions. Every mutation runs in its own
// transaction and reports [ErrQuestionNotFound] when the id does not exist.
type QuestionRepository interface {
	Create(ctx context.Context, question models.Question) (models.Question, error)
	GetByID(ctx context.Context, id int64) (models.Question, error)
	Count(ctx context.Context, query models.QuestionQuery) (int, error)
	List(ctx context.Context, query models.QuestionQuery) ([]models.Question, error)
	SetAnswer(ctx context.Context, id int64, answer string, answeredAt time.Time) error
	UpdateContent(ctx context.Context, id int64, content, nickname string) error
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// AdminRepository persists the single admin account.
type AdminRepository interface {
	Get(ctx context.Context) (models.Admin, error)
	GetByID(ctx context.Context, id int64) (models.Admin, error)
	FindByUsername(ctx context.Context, username string) (models.Admin, error)
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)
	UpdateProfile(ctx context.Context, id int64, displayName, introduction string) error
	UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error
}

// SettingRepository persists string settings and converts them to
// [models.Settings].
type SettingRepository interface {
	Get(ctx context.Context, key, defaultValue string) (string, error)
	Set(ctx context.Context, key, value string) error
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}
