// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrContentTooLong:          http.StatusUnprocessableEntity,
	service.ErrWrongConfirmationPhrase: http.StatusUnprocessableEntity,
	service.ErrInvalidInput:            http.StatusUnprocessableEntity,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrSessionExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVersionIsNotSpecified:   http.StatusInternalServerError,

	ErrInvalidQuestionID:    http.StatusNotFound,
	ErrAdminSessionRequired: http.StatusUnauthorized,
	ErrTooManyRequests:      http.StatusTooManyRequests,
	ErrInvalidJSON:          http.StatusBadRequest,

	store.ErrQuestionNotFound: http.StatusNotFound,
	store.ErrAdminNotFound:    http.StatusNotFound,
	store.ErrUsernameTaken:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
