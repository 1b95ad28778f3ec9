// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ask-me/models"
)

// parsePage reads the "page" query parameter. A missing value means the first
// page; an unparsable one becomes 0 so the listing redirects to page 1.
func parsePage(r *http.Request) int {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return page
}

func parseFilter(r *http.Request) models.QuestionFilter {
	return models.ParseQuestionFilter(r.URL.Query().Get("filter"))
}

func parseQuestionID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidQuestionID
	}
	return id, nil
}
