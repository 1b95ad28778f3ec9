// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/migrations"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newMockDB(t *testing.T, dialect migrations.Dialect) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return NewDB(conn, dialect, logger.Nop()), mock
}

func newTestQuestionRepo(t *testing.T) (QuestionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newMockDB(t, migrations.DialectPostgres)
	return NewQuestionRepository(db, logger.Nop()), mock
}

var questionRowColumns = []string{"id", "content", "nickname", "created_at", "answer", "answered_at", "is_approved"}

// ── Create ────────────────────────────────────────────────────────────────────

func TestQuestionRepository_Create_Success(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO questions (content,nickname,created_at,is_approved) VALUES ($1,$2,$3,$4) RETURNING id")).
		WithArgs("hello?", "anon", now, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))
	mock.ExpectCommit()

	created, err := repo.Create(context.Background(), models.Question{
		Content:    "hello?",
		Nickname:   "anon",
		CreatedAt:  now,
		IsApproved: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.ID)
	assert.Equal(t, "hello?", created.Content)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Create_BeginError(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	_, err := repo.Create(context.Background(), models.Question{Content: "x"})
	require.ErrorIs(t, err, ErrBeginningTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Create_InsertErrorRollsBack(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO questions").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	_, err := repo.Create(context.Background(), models.Question{Content: "x"})
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.True(t, IsStorageError(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Create_CommitError(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO questions").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	_, err := repo.Create(context.Background(), models.Question{Content: "x"})
	require.ErrorIs(t, err, ErrCommitingTransaction)
	require.NoError(t, mock.ExpectationsWereMet())
}

// ── GetByID ───────────────────────────────────────────────────────────────────

func TestQuestionRepository_GetByID(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	answered := created.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuestions + " WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow(int64(5), "why?", "bob", created, "because", answered, true))

	q, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.ID)
	require.NotNil(t, q.Answer)
	assert.Equal(t, "because", *q.Answer)
	require.NotNil(t, q.AnsweredAt)
	assert.True(t, answered.Equal(*q.AnsweredAt))
	assert.True(t, q.IsAnswered())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_GetByID_NotFound(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM questions WHERE id").
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 9)
	require.ErrorIs(t, err, ErrQuestionNotFound)
}

// ── Count / List ──────────────────────────────────────────────────────────────

func TestQuestionRepository_Count(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM questions WHERE is_approved = $1")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

	count, err := repo.Count(context.Background(), models.QuestionQuery{OnlyApproved: true, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 15, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_Count_Error(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("boom"))

	_, err := repo.Count(context.Background(), models.QuestionQuery{})
	require.ErrorIs(t, err, ErrExecutingQuery)
}

func TestQuestionRepository_List(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuestions + " WHERE answer IS NULL ORDER BY created_at DESC, id DESC LIMIT 20 OFFSET 20")).
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow(int64(3), "third", "anon", now, nil, nil, false).
			AddRow(int64(2), "second", "anon", now.Add(-time.Minute), nil, nil, true))

	questions, err := repo.List(context.Background(), models.QuestionQuery{
		Filter: models.FilterUnanswered,
		Limit:  20,
		Offset: 20,
	})
	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, int64(3), questions[0].ID)
	assert.Nil(t, questions[0].Answer)
	assert.Nil(t, questions[0].AnsweredAt)
	assert.False(t, questions[0].IsApproved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_List_ScanError(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	_, err := repo.List(context.Background(), models.QuestionQuery{Limit: 10})
	require.ErrorIs(t, err, ErrScanningRow)
}

func TestQuestionRepository_List_RowsError(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows(questionRowColumns).
			AddRow(int64(1), "a", "anon", now, nil, nil, true).
			RowError(0, errors.New("network reset")))

	_, err := repo.List(context.Background(), models.QuestionQuery{Limit: 10})
	require.ErrorIs(t, err, ErrScanningRows)
}

// ── mutations ─────────────────────────────────────────────────────────────────

func TestQuestionRepository_Mutations(t *testing.T) {
	answeredAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query string
		args  []any
		call  func(repo QuestionRepository) error
	}{
		{
			name:  "set answer",
			query: "UPDATE questions SET answer = $1, answered_at = $2 WHERE id = $3",
			args:  []any{"yes", answeredAt, int64(1)},
			call: func(repo QuestionRepository) error {
				return repo.SetAnswer(context.Background(), 1, "yes", answeredAt)
			},
		},
		{
			name:  "update content",
			query: "UPDATE questions SET content = $1, nickname = $2 WHERE id = $3",
			args:  []any{"edited", "bob", int64(1)},
			call: func(repo QuestionRepository) error {
				return repo.UpdateContent(context.Background(), 1, "edited", "bob")
			},
		},
		{
			name:  "approve",
			query: "UPDATE questions SET is_approved = $1 WHERE id = $2",
			args:  []any{true, int64(1)},
			call: func(repo QuestionRepository) error {
				return repo.Approve(context.Background(), 1)
			},
		},
		{
			name:  "delete",
			query: "DELETE FROM questions WHERE id = $1",
			args:  []any{int64(1)},
			call: func(repo QuestionRepository) error {
				return repo.Delete(context.Background(), 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" success", func(t *testing.T) {
			repo, mock := newTestQuestionRepo(t)
			args := make([]driver.Value, 0, len(tt.args))
			for _, a := range tt.args {
				args = append(args, a)
			}

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tt.query)).WithArgs(args...).WillReturnResult(sqlmock.NewResult(0, 1))
			mock.ExpectCommit()

			require.NoError(t, tt.call(repo))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run(tt.name+" not found", func(t *testing.T) {
			repo, mock := newTestQuestionRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tt.query)).WillReturnResult(sqlmock.NewResult(0, 0))
			mock.ExpectCommit()

			require.ErrorIs(t, tt.call(repo), ErrQuestionNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run(tt.name+" exec error", func(t *testing.T) {
			repo, mock := newTestQuestionRepo(t)

			mock.ExpectBegin()
			mock.ExpectExec(regexp.QuoteMeta(tt.query)).WillReturnError(errors.New("lock timeout"))
			mock.ExpectRollback()

			err := tt.call(repo)
			require.ErrorIs(t, err, ErrExecutingStatement)
			assert.NotErrorIs(t, err, ErrQuestionNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepository_DeleteAll(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM questions")).WillReturnResult(sqlmock.NewResult(0, 15))
	mock.ExpectCommit()

	deleted, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(15), deleted)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepository_DeleteAll_EmptyTableIsNotAnError(t *testing.T) {
	repo, mock := newTestQuestionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM questions").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	deleted, err := repo.DeleteAll(context.Background())
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
