// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the public JSON API of a running
// go-ask-me server.
//
// The primary abstraction is [QuestionsClient]. HTTP status codes are mapped
// to the sentinel errors in errors.go by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrContentTooLong] for 422).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-ask-me/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// QuestionsClient talks to the public question API.
type QuestionsClient interface {
	// Ask submits a question. A blank question is accepted by the server
	// without creating anything; Ask reports it as [ErrEmptyQuestion].
	Ask(ctx context.Context, submission models.QuestionSubmission) (models.Question, error)

	// List fetches one page of the public listing. Out-of-range pages are
	// redirected by the server and the redirect is followed.
	List(ctx context.Context, page int) (models.QuestionPage, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)
}
