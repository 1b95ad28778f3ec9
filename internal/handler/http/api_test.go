// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func postJSON(target, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// ── GET /api/questions ────────────────────────────────────────────────────────

func TestAPIListQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHandler(t, ctrl)

	created := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	th.questions.EXPECT().
		List(gomock.Any(), models.ListRequest{Page: 2, Audience: models.AudiencePublic}).
		Return(models.QuestionPage{
			Questions:  []models.Question{{ID: 3, Content: "q", Nickname: "anon", CreatedAt: created, IsApproved: true}},
			Pagination: models.Pagination{Page: 2, PageSize: 10, TotalPages: 2, TotalItems: 11, HasPrev: true},
		}, nil)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/questions?page=2", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got models.QuestionPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Questions, 1)
	assert.Equal(t, int64(3), got.Questions[0].ID)
	assert.Equal(t, 2, got.Pagination.Page)
	assert.True(t, got.Pagination.HasPrev)
}

func TestAPIListQuestions_EmptyListIsArray(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHandler(t, ctrl)

	th.questions.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.QuestionPage{Pagination: models.Pagination{Page: 1, PageSize: 10, TotalPages: 1}}, nil)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"questions":[]`)
}

func TestAPIListQuestions_Redirect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHandler(t, ctrl)

	th.questions.EXPECT().List(gomock.Any(), models.ListRequest{Page: 0, Audience: models.AudiencePublic}).
		Return(models.QuestionPage{RedirectPage: 1}, nil)

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/questions?page=zero", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/api/questions?page=1", rec.Header().Get("Location"))
}

func TestAPIListQuestions_StorageErrorHidesDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	th := newTestHandler(t, ctrl)

	th.questions.EXPECT().List(gomock.Any(), gomock.Any()).
		Return(models.QuestionPage{}, errors.Join(store.ErrScanningRows, errors.New("column 7 is null")))

	rec := th.do(httptest.NewRequest(http.MethodGet, "/api/questions", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "column 7")
}

// ── POST /api/questions ───────────────────────────────────────────────────────

func TestAPISubmitQuestion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		expect     func(th *testHandler)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created",
			body: `{"content":"Hi?","nickname":"amy"}`,
			expect: func(th *testHandler) {
				th.questions.EXPECT().Submit(gomock.Any(), models.QuestionSubmission{Content: "Hi?", Nickname: "amy"}).
					Return(models.Question{ID: 10, Content: "Hi?", Nickname: "amy", IsApproved: true}, nil)
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"id":10`,
		},
		{
			name: "empty is a no-op",
			body: `{"content":"   "}`,
			expect: func(th *testHandler) {
				th.questions.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Question{}, service.ErrEmptyContent)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "too long",
			body: `{"content":"x"}`,
			expect: func(th *testHandler) {
				th.questions.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(models.Question{}, service.ErrContentTooLong)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   service.ErrContentTooLong.Error(),
		},
		{
			name:       "broken json",
			body:       `{"content":`,
			expect:     func(*testHandler) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   ErrInvalidJSON.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			th := newTestHandler(t, ctrl)
			tt.expect(th)

			rec := th.do(postJSON("/api/questions", tt.body))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			} else {
				assert.Empty(t, rec.Body.String())
			}
		})
	}
}
