// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) writeJSONError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Msg("api request failed")
		message = http.StatusText(status)
	}
	_, _ = utils.WriteJSON(w, errorResponse{Error: message}, status)
}

// listQuestions serves the public listing. Out-of-range pages are redirected
// the same way the homepage is.
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	listing, err := h.services.QuestionService.List(r.Context(), models.ListRequest{
		Page:     parsePage(r),
		Audience: models.AudiencePublic,
	})
	if err != nil {
		h.writeJSONError(w, r, err)
		return
	}
	if listing.IsRedirect() {
		http.Redirect(w, r, "/api/questions?page="+strconv.Itoa(listing.RedirectPage), http.StatusFound)
		return
	}

	if listing.Questions == nil {
		listing.Questions = []models.Question{}
	}
	_, _ = utils.WriteJSON(w, listing, http.StatusOK)
}

func (h *Handler) submitQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var submission models.QuestionSubmission
	if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeJSONError(w, r, ErrInvalidJSON)
		return
	}

	question, err := h.services.QuestionService.Submit(r.Context(), submission)
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		w.WriteHeader(http.StatusNoContent)
		return
	case err != nil:
		h.writeJSONError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, question, http.StatusCreated)
}
