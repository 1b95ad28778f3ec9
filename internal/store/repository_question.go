// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/Masterminds/squirrel"
)

// questionRepository is the SQL implementation of [QuestionRepository].
// Queries are built with the dialect-aware squirrel builder held by [DB].
type questionRepository struct {
	*DB
	logger *logger.Logger
}

// NewQuestionRepository constructs a [QuestionRepository] backed by db.
func NewQuestionRepository(db *DB, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		DB:     db,
		logger: logger,
	}
}

// Create inserts the question and returns it with the database id.
// CreatedAt and IsApproved are taken from the argument as-is.
func (r *questionRepository) Create(ctx context.Context, question models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateQuestionQuery(r.builder, question).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Create").Msg("failed to build query")
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Create").Msg("failed to begin transaction")
		return models.Question{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = tx.QueryRowContext(ctx, query, args...).Scan(&question.ID); err != nil {
		log.Err(err).Str("func", "*questionRepository.Create").Msg("failed to insert question")
		return models.Question{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*questionRepository.Create").Msg("failed to commit transaction")
		return models.Question{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	log.Debug().
		Str("func", "*questionRepository.Create").
		Int64("question_id", question.ID).
		Bool("is_approved", question.IsApproved).
		Msg("question created")

	return question, nil
}

// GetByID returns a single question or [ErrQuestionNotFound].
func (r *questionRepository) GetByID(ctx context.Context, id int64) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuestionQuery(r.builder, id).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetByID").Msg("failed to build query")
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	question, err := scanQuestion(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetByID").Int64("question_id", id).Msg("failed to scan question row")
		return models.Question{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return question, nil
}

// Count returns the number of questions matching the predicates of query.
// Limit and Offset are ignored.
func (r *questionRepository) Count(ctx context.Context, query models.QuestionQuery) (int, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountQuestionsQuery(r.builder, query).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.Count").Msg("failed to build query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*questionRepository.Count").
			Bool("only_approved", query.OnlyApproved).
			Str("filter", string(query.Filter)).
			Msg("failed to count questions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// List returns the ordered window of questions described by query.
func (r *questionRepository) List(ctx context.Context, query models.QuestionQuery) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListQuestionsQuery(r.builder, query).ToSql()
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.List").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*questionRepository.List").
			Uint64("limit", query.Limit).
			Uint64("offset", query.Offset).
			Msg("failed to execute query for listing questions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0, query.Limit)
	for rows.Next() {
		question, scanErr := scanQuestion(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*questionRepository.List").Msg("failed to scan question row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		questions = append(questions, question)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*questionRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return questions, nil
}

// SetAnswer stores the answer together with its timestamp in one statement.
func (r *questionRepository) SetAnswer(ctx context.Context, id int64, answer string, answeredAt time.Time) error {
	return r.mutate(ctx, "*questionRepository.SetAnswer", id, buildSetAnswerQuery(r.builder, id, answer, answeredAt))
}

// UpdateContent overwrites content and nickname, leaving the answer and the
// approval flag untouched.
func (r *questionRepository) UpdateContent(ctx context.Context, id int64, content, nickname string) error {
	return r.mutate(ctx, "*questionRepository.UpdateContent", id, buildUpdateContentQuery(r.builder, id, content, nickname))
}

// Approve sets the approval flag. Approving an approved question succeeds.
func (r *questionRepository) Approve(ctx context.Context, id int64) error {
	return r.mutate(ctx, "*questionRepository.Approve", id, buildApproveQuery(r.builder, id))
}

// Delete removes the question permanently.
func (r *questionRepository) Delete(ctx context.Context, id int64) error {
	return r.mutate(ctx, "*questionRepository.Delete", id, buildDeleteQuestionQuery(r.builder, id))
}

// DeleteAll removes every question and returns how many were deleted.
func (r *questionRepository) DeleteAll(ctx context.Context) (int64, error) {
	deleted, err := r.execInTx(ctx, "*questionRepository.DeleteAll", buildDeleteAllQuestionsQuery(r.builder))
	if err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Warn().
		Str("func", "*questionRepository.DeleteAll").
		Int64("deleted", deleted).
		Msg("all questions deleted")

	return deleted, nil
}

func (r *questionRepository) mutate(ctx context.Context, funcName string, id int64, stmt squirrel.Sqlizer) error {
	affected, err := r.execInTx(ctx, funcName, stmt)
	if err != nil {
		return err
	}

	if affected == 0 {
		logger.FromContext(ctx).Debug().Str("func", funcName).Int64("question_id", id).Msg("question not found")
		return ErrQuestionNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var (
		question   models.Question
		answer     sql.NullString
		answeredAt sql.NullTime
	)

	if err := row.Scan(
		&question.ID,
		&question.Content,
		&question.Nickname,
		&question.CreatedAt,
		&answer,
		&answeredAt,
		&question.IsApproved,
	); err != nil {
		return models.Question{}, err
	}

	question.CreatedAt = question.CreatedAt.UTC()
	if answer.Valid {
		question.Answer = &answer.String
	}
	if answeredAt.Valid {
		t := answeredAt.Time.UTC()
		question.AnsweredAt = &t
	}

	return question, nil
}
