// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrEmptyContent is returned by Submit for a blank question. Callers
	// treat it as a silent no-op rather than a user-facing failure.
	ErrEmptyContent = errors.New("question content is empty")

	ErrContentTooLong          = errors.New("question content is too long")
	ErrWrongConfirmationPhrase = errors.New("wrong confirmation phrase")
	ErrInvalidInput            = errors.New("invalid input")

	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrSessionCreationFailed   = errors.New("session token creation failed")
	ErrSessionExpiredOrInvalid = errors.New("session is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// IsValidationError reports whether err is one of the input rejections that
// should be shown back to the admin or visitor.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrContentTooLong) ||
		errors.Is(err, ErrWrongConfirmationPhrase) ||
		errors.Is(err, ErrInvalidInput)
}
