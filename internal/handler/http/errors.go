// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidQuestionID is returned when the {id} path segment is not a
	// positive integer. It is rendered as a not-found page.
	ErrInvalidQuestionID = errors.New("invalid question id")

	// ErrAdminSessionRequired is returned when an admin route is reached
	// without a valid session.
	ErrAdminSessionRequired = errors.New("admin session required")

	// ErrTooManyRequests is reserved for a request limiter; nothing returns
	// it yet.
	ErrTooManyRequests = errors.New("too many requests")

	// ErrInvalidJSON is returned when a JSON API body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
