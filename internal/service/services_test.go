// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/config"
	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteServices wires every service over a migrated in-memory database.
// Submissions are stamped one second apart so ordering is deterministic.
func newSQLiteServices(t *testing.T) *Services {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{DB: config.DB{DSN: ":memory:"}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := NewServices(storages, config.StructuredConfig{App: config.App{
		SessionSignKey:  "secret",
		SessionIssuer:   config.DefaultSessionIssuer,
		SessionDuration: time.Hour,
		Version:         "test",
	}}, logger.Nop())
	require.NoError(t, err)

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	services.QuestionService.(*questionService).clock = func() time.Time {
		now = now.Add(time.Second)
		return now
	}

	require.NoError(t, services.SettingsService.Bootstrap(context.Background()))
	return services
}

func submitN(t *testing.T, svc QuestionService, n int) []models.Question {
	t.Helper()
	created := make([]models.Question, 0, n)
	for i := 1; i <= n; i++ {
		q, err := svc.Submit(context.Background(), models.QuestionSubmission{Content: fmt.Sprintf("question %d", i)})
		require.NoError(t, err)
		created = append(created, q)
	}
	return created
}

func TestNewServices_RequiresVersion(t *testing.T) {
	_, err := NewServices(&store.Storages{}, config.StructuredConfig{}, logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

// ── scenarios ─────────────────────────────────────────────────────────────────

func TestScenario_RoundTripSanitizesNickname(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	_, err := s.QuestionService.Submit(ctx, models.QuestionSubmission{Content: "Is this <b>safe</b>?", Nickname: `Robert"); DROP TABLE`})
	require.NoError(t, err)

	page, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, page.Questions, 1)
	assert.Equal(t, "Is this <b>safe</b>?", page.Questions[0].Content)
	assert.Equal(t, "Robert) DROP TABLE", page.Questions[0].Nickname)
	assert.True(t, page.Questions[0].IsApproved)
}

func TestScenario_FifteenQuestionsPaginate(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	submitN(t, s.QuestionService, 15)

	first, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1})
	require.NoError(t, err)
	require.Len(t, first.Questions, 10)
	assert.Equal(t, "question 15", first.Questions[0].Content)
	assert.Equal(t, "question 6", first.Questions[9].Content)
	assert.Equal(t, 2, first.Pagination.TotalPages)
	assert.Equal(t, 15, first.Pagination.TotalItems)
	assert.True(t, first.Pagination.HasNext)

	second, err := s.QuestionService.List(ctx, models.ListRequest{Page: 2})
	require.NoError(t, err)
	require.Len(t, second.Questions, 5)
	assert.Equal(t, "question 5", second.Questions[0].Content)
	assert.Equal(t, "question 1", second.Questions[4].Content)
	assert.False(t, second.Pagination.HasNext)

	third, err := s.QuestionService.List(ctx, models.ListRequest{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, third.RedirectPage)

	zero, err := s.QuestionService.List(ctx, models.ListRequest{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, zero.RedirectPage)

	admin, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1, Audience: models.AudienceAdmin})
	require.NoError(t, err)
	assert.Len(t, admin.Questions, 15)
	assert.Equal(t, 1, admin.Pagination.TotalPages)
}

func TestScenario_HugePageRedirects(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	submitN(t, s.QuestionService, 1)

	for _, page := range []int{math.MaxInt, 1e18, math.MaxInt / models.PublicPageSize} {
		got, err := s.QuestionService.List(ctx, models.ListRequest{Page: page})
		require.NoError(t, err, "page %d", page)
		assert.Equal(t, 1, got.RedirectPage, "page %d", page)
	}

	got, err := s.QuestionService.List(ctx, models.ListRequest{Page: math.MaxInt, Audience: models.AudienceAdmin})
	require.NoError(t, err)
	assert.Equal(t, 1, got.RedirectPage)
}

func TestScenario_ModerationApproval(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	require.NoError(t, s.SettingsService.SetModeration(ctx, true))
	created := submitN(t, s.QuestionService, 3)
	for _, q := range created {
		assert.False(t, q.IsApproved)
	}

	require.NoError(t, s.QuestionService.Approve(ctx, created[1].ID))

	public, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1, Audience: models.AudiencePublic})
	require.NoError(t, err)
	require.Len(t, public.Questions, 1)
	assert.Equal(t, created[1].ID, public.Questions[0].ID)

	pending, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1, Filter: models.FilterPending, Audience: models.AudienceAdmin})
	require.NoError(t, err)
	assert.Len(t, pending.Questions, 2)

	stats, err := s.QuestionService.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.QuestionStats{Total: 3, Unanswered: 3, Pending: 2}, stats)
}

func TestScenario_TogglingModerationKeepsApprovals(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	submitN(t, s.QuestionService, 5)
	require.NoError(t, s.SettingsService.SetModeration(ctx, true))

	public, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1})
	require.NoError(t, err)
	assert.Len(t, public.Questions, 5)

	pending, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1, Filter: models.FilterPending, Audience: models.AudienceAdmin})
	require.NoError(t, err)
	assert.Empty(t, pending.Questions)

	// and the other way round: pending rows stay pending
	held := submitN(t, s.QuestionService, 1)[0]
	require.NoError(t, s.SettingsService.SetModeration(ctx, false))

	got, err := s.QuestionService.Get(ctx, held.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)
}

func TestScenario_DeleteAllIsCaseSensitive(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	submitN(t, s.QuestionService, 4)

	_, err := s.QuestionService.DeleteAll(ctx, "delete all questions")
	assert.ErrorIs(t, err, ErrWrongConfirmationPhrase)

	stats, err := s.QuestionService.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, stats.Total)

	deleted, err := s.QuestionService.DeleteAll(ctx, "DELETE ALL QUESTIONS")
	require.NoError(t, err)
	assert.Equal(t, int64(4), deleted)

	stats, err = s.QuestionService.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)

	empty, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1})
	require.NoError(t, err)
	assert.False(t, empty.IsRedirect())
	assert.Empty(t, empty.Questions)

	back, err := s.QuestionService.List(ctx, models.ListRequest{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, 1, back.RedirectPage)
}

func TestScenario_ApproveTwiceDeleteTwice(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	q := submitN(t, s.QuestionService, 1)[0]

	require.NoError(t, s.QuestionService.Approve(ctx, q.ID))
	require.NoError(t, s.QuestionService.Approve(ctx, q.ID))

	require.NoError(t, s.QuestionService.Delete(ctx, q.ID))
	assert.ErrorIs(t, s.QuestionService.Delete(ctx, q.ID), store.ErrQuestionNotFound)
	assert.ErrorIs(t, s.QuestionService.Approve(ctx, q.ID), store.ErrQuestionNotFound)
}

func TestScenario_TooLongPersistsNothing(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	_, err := s.QuestionService.Submit(ctx, models.QuestionSubmission{Content: strings.Repeat("x", MaxContentLength+1)})
	assert.ErrorIs(t, err, ErrContentTooLong)

	stats, err := s.QuestionService.Stats(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestScenario_AnswerAndEdit(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()
	q := submitN(t, s.QuestionService, 1)[0]

	require.NoError(t, s.QuestionService.Answer(ctx, q.ID, "forty-two"))
	require.NoError(t, s.QuestionService.Edit(ctx, models.QuestionEdit{ID: q.ID, Content: "edited", Nickname: "ed"}))

	got, err := s.QuestionService.Get(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", got.Content)
	assert.Equal(t, "ed", got.Nickname)
	require.NotNil(t, got.Answer)
	assert.Equal(t, "forty-two", *got.Answer)
	require.NotNil(t, got.AnsweredAt)
	assert.True(t, got.IsApproved)

	answered, err := s.QuestionService.List(ctx, models.ListRequest{Page: 1, Filter: models.FilterAnswered, Audience: models.AudienceAdmin})
	require.NoError(t, err)
	assert.Len(t, answered.Questions, 1)

	assert.ErrorIs(t, s.QuestionService.Answer(ctx, q.ID+100, "x"), store.ErrQuestionNotFound)
}

func TestScenario_AdminLifecycle(t *testing.T) {
	s := newSQLiteServices(t)
	ctx := context.Background()

	admin, err := s.AdminService.Bootstrap(ctx)
	require.NoError(t, err)
	again, err := s.AdminService.Bootstrap(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, again.ID)

	logged, err := s.AdminService.Authenticate(ctx, models.LoginRequest{Username: "admin", Password: "admin"})
	require.NoError(t, err)
	assert.NotEqual(t, "admin", logged.PasswordHash)

	require.NoError(t, s.AdminService.UpdateCredentials(ctx, models.CredentialsUpdate{
		AdminID:         admin.ID,
		CurrentPassword: "admin",
		Username:        "owner",
		NewPassword:     "much-better-password",
	}))

	_, err = s.AdminService.Authenticate(ctx, models.LoginRequest{Username: "admin", Password: "admin"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.AdminService.Authenticate(ctx, models.LoginRequest{Username: "owner", Password: "much-better-password"})
	require.NoError(t, err)

	token, err := s.SessionService.Issue(ctx, admin)
	require.NoError(t, err)
	parsed, err := s.SessionService.Parse(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, admin.ID, parsed.AdminID)
}
