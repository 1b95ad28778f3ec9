// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/Masterminds/squirrel"
)

// adminRepository is the SQL implementation of [AdminRepository] over the
// "admins" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext].
// Password hashes are never logged.
type adminRepository struct {
	*DB
	logger *logger.Logger
}

// NewAdminRepository constructs an [AdminRepository] backed by db.
func NewAdminRepository(db *DB, logger *logger.Logger) AdminRepository {
	logger.Debug().Msg("creating admin repository")
	return &adminRepository{
		DB:     db,
		logger: logger,
	}
}

// Get returns the site admin: the row with the lowest id.
func (r *adminRepository) Get(ctx context.Context) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.Get", buildSelectAdminQuery(r.builder).OrderBy("id ASC").Limit(1))
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.GetByID", buildSelectAdminQuery(r.builder).Where(squirrel.Eq{"id": id}))
}

func (r *adminRepository) FindByUsername(ctx context.Context, username string) (models.Admin, error) {
	return r.findOne(ctx, "*adminRepository.FindByUsername", buildSelectAdminQuery(r.builder).Where(squirrel.Eq{"username": username}))
}

// Create inserts a new admin and returns it with the assigned id.
//
// Error handling:
//   - unique violation on username → [ErrUsernameTaken].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *adminRepository) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAdminQuery(r.builder, admin).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.Create").Msg("failed to build query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*adminRepository.Create").Msg("failed to begin transaction")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&admin.ID); err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "*adminRepository.Create").Str("username", admin.Username).Msg("username already exists")
			return models.Admin{}, ErrUsernameTaken
		}
		log.Err(err).Str("func", "*adminRepository.Create").Msg("failed to insert admin")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*adminRepository.Create").Msg("failed to commit transaction")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return admin, nil
}

func (r *adminRepository) UpdateProfile(ctx context.Context, id int64, displayName, introduction string) error {
	affected, err := r.execInTx(ctx, "*adminRepository.UpdateProfile", buildUpdateProfileQuery(r.builder, id, displayName, introduction))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}
	return nil
}

// UpdateCredentials replaces the username and password hash together.
// A rename onto an existing username yields [ErrUsernameTaken].
func (r *adminRepository) UpdateCredentials(ctx context.Context, id int64, username, passwordHash string) error {
	affected, err := r.execInTx(ctx, "*adminRepository.UpdateCredentials", buildUpdateCredentialsQuery(r.builder, id, username, passwordHash))
	if err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			return ErrUsernameTaken
		}
		return err
	}
	if affected == 0 {
		return ErrAdminNotFound
	}

	logger.FromContext(ctx).Info().
		Str("func", "*adminRepository.UpdateCredentials").
		Int64("admin_id", id).
		Msg("admin credentials updated")

	return nil
}

func (r *adminRepository) findOne(ctx context.Context, funcName string, b squirrel.SelectBuilder) (models.Admin, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to build query")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var admin models.Admin
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Username,
		&admin.PasswordHash,
		&admin.DisplayName,
		&admin.Introduction,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Admin{}, ErrAdminNotFound
	}
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to scan admin row")
		return models.Admin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return admin, nil
}
