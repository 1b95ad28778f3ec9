// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidQuestionID      = errors.New("invalid question ID")
	ErrEmptyContent           = errors.New("content is required")
	ErrContentTooLong         = errors.New("content is too long")
	ErrInvalidNickname        = errors.New("invalid nickname")
	ErrInvalidAdminID         = errors.New("invalid admin ID")
	ErrInvalidDisplayName     = errors.New("invalid display name")
	ErrInvalidIntroduction    = errors.New("introduction is too long")
	ErrInvalidUsername        = errors.New("invalid username")
	ErrInvalidPassword        = errors.New("invalid password")
	ErrMissingCurrentPassword = errors.New("current password is required")
)
