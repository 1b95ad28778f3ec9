// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Question is a visitor-submitted item shown on the public page once it is
// visible under the current moderation rules.
type Question struct {
	// ID is assigned by the database at creation time and never changes.
	ID int64 `json:"id"`

	// Content is the question text, trimmed and at most 2000 characters.
	Content string `json:"content"`

	// Nickname is the sanitized author label; "anon" when none was given.
	Nickname string `json:"nickname"`

	// CreatedAt is set once, in UTC, when the question is submitted.
	CreatedAt time.Time `json:"created_at"`

	// Answer is nil until the admin answers the question.
	Answer *string `json:"answer,omitempty"`

	// AnsweredAt is set exactly when Answer is set.
	AnsweredAt *time.Time `json:"answered_at,omitempty"`

	// IsApproved controls public visibility while moderation is enabled.
	// It is fixed at creation time from the moderation flag and only
	// changes through an explicit approval.
	IsApproved bool `json:"is_approved"`
}

// IsAnswered reports whether the admin has answered the question.
func (q Question) IsAnswered() bool {
	return q.Answer != nil
}

// IsPending reports whether the question still waits for approval.
func (q Question) IsPending() bool {
	return !q.IsApproved
}

// QuestionSubmission is the raw visitor input for a new question.
type QuestionSubmission struct {
	Content  string `json:"content"`
	Nickname string `json:"nickname"`
}

// QuestionEdit carries admin changes to an existing question's text.
type QuestionEdit struct {
	ID       int64  `json:"id" validate:"required,gt=0"`
	Content  string `json:"content" validate:"required,max=2000"`
	Nickname string `json:"nickname" validate:"max=50"`
}

// QuestionStats summarizes the question table for the dashboard header.
type QuestionStats struct {
	Total      int `json:"total"`
	Unanswered int `json:"unanswered"`
	Pending    int `json:"pending"`
}
