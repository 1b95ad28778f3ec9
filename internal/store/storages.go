// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
)

// Storages bundles every repository over one database connection.
type Storages struct {
	QuestionRepository QuestionRepository
	AdminRepository    AdminRepository
	SettingRepository  SettingRepository

	db *DB
}

// NewStorages opens the database named by cfg, applies migrations and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		QuestionRepository: NewQuestionRepository(db, log),
		AdminRepository:    NewAdminRepository(db, log),
		SettingRepository:  NewSettingRepository(db, log),
		db:                 db,
	}
}

// DB exposes the underlying connection.
func (s *Storages) DB() *DB {
	return s.db
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
