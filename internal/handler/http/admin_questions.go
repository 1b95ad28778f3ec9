// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/models"
)

// backToDashboard redirects to the dashboard page and filter the action was
// triggered from.
func backToDashboard(w http.ResponseWriter, r *http.Request, noticeCode string) {
	page := parsePage(r)
	if page < 1 {
		page = 1
	}
	http.Redirect(w, r, dashboardURL(page, parseFilter(r), noticeCode), http.StatusSeeOther)
}

func (h *Handler) answerQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseQuestionID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	if err = h.services.QuestionService.Answer(r.Context(), id, r.PostForm.Get("answer")); err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Msg("question answered")
	backToDashboard(w, r, noticeAnswered)
}

func (h *Handler) editQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := parseQuestionID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if err = r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	err = h.services.QuestionService.Edit(r.Context(), models.QuestionEdit{
		ID:       id,
		Content:  r.PostForm.Get("content"),
		Nickname: r.PostForm.Get("nickname"),
	})
	switch {
	case errors.Is(err, service.ErrContentTooLong):
		backToDashboard(w, r, noticeTooLong)
		return
	case errors.Is(err, service.ErrInvalidInput):
		backToDashboard(w, r, noticeInvalidInput)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	backToDashboard(w, r, noticeEdited)
}

func (h *Handler) approveQuestion(w http.ResponseWriter, r *http.Request) {
	h.questionAction(w, r, h.services.QuestionService.Approve, noticeApproved)
}

func (h *Handler) rejectQuestion(w http.ResponseWriter, r *http.Request) {
	h.questionAction(w, r, h.services.QuestionService.Reject, noticeRejected)
}

func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	h.questionAction(w, r, h.services.QuestionService.Delete, noticeDeleted)
}

func (h *Handler) questionAction(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id int64) error, noticeCode string) {
	id, err := parseQuestionID(r)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	if err = action(r.Context(), id); err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("id", id).Str("action", noticeCode).Msg("question updated")
	backToDashboard(w, r, noticeCode)
}

func (h *Handler) deleteAllQuestions(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	deleted, err := h.services.QuestionService.DeleteAll(r.Context(), r.PostForm.Get("confirmation"))
	switch {
	case errors.Is(err, service.ErrWrongConfirmationPhrase):
		http.Redirect(w, r, dashboardURL(1, models.FilterAll, noticeWrongPhrase), http.StatusSeeOther)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Warn().Int64("deleted", deleted).Msg("all questions deleted")
	http.Redirect(w, r, dashboardURL(1, models.FilterAll, noticeDeletedAll), http.StatusSeeOther)
}
