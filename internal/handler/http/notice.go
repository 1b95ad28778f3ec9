// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strings"
)

// Notice codes travel in the "notice" query parameter after a redirect.
const (
	noticeSubmitted        = "submitted"
	noticePending          = "pending"
	noticeTooLong          = "too_long"
	noticeLoginFailed      = "login_failed"
	noticeLoginRequired    = "login_required"
	noticeLoggedOut        = "logged_out"
	noticeAnswered         = "answered"
	noticeEdited           = "edited"
	noticeApproved         = "approved"
	noticeRejected         = "rejected"
	noticeDeleted          = "deleted"
	noticeDeletedAll       = "deleted_all"
	noticeWrongPhrase      = "wrong_phrase"
	noticeInvalidInput     = "invalid_input"
	noticeSettingsSaved    = "settings_saved"
	noticeProfileSaved     = "profile_saved"
	noticeCredentialsSaved = "credentials_saved"
	noticeUsernameTaken    = "username_taken"
	noticeWrongPassword    = "wrong_password"
)

type notice struct {
	// Kind is a Bulma colour modifier such as "is-success".
	Kind    string
	Message string
}

var notices = map[string]notice{
	noticeSubmitted:        {Kind: "is-success", Message: "Your question has been submitted!"},
	noticePending:          {Kind: "is-info", Message: "Your question has been submitted and will appear once it is approved."},
	noticeTooLong:          {Kind: "is-danger", Message: "Your question is too long. Please keep it under 2000 characters."},
	noticeLoginFailed:      {Kind: "is-danger", Message: "Invalid username or password."},
	noticeLoginRequired:    {Kind: "is-warning", Message: "Please log in to continue."},
	noticeLoggedOut:        {Kind: "is-info", Message: "You have been logged out."},
	noticeAnswered:         {Kind: "is-success", Message: "Answer saved."},
	noticeEdited:           {Kind: "is-success", Message: "Question updated."},
	noticeApproved:         {Kind: "is-success", Message: "Question approved."},
	noticeRejected:         {Kind: "is-info", Message: "Question rejected."},
	noticeDeleted:          {Kind: "is-info", Message: "Question deleted."},
	noticeDeletedAll:       {Kind: "is-warning", Message: "All questions have been deleted."},
	noticeWrongPhrase:      {Kind: "is-danger", Message: "The confirmation phrase did not match. Nothing was deleted."},
	noticeInvalidInput:     {Kind: "is-danger", Message: "Some of the submitted values are invalid."},
	noticeSettingsSaved:    {Kind: "is-success", Message: "Settings saved."},
	noticeProfileSaved:     {Kind: "is-success", Message: "Profile saved."},
	noticeCredentialsSaved: {Kind: "is-success", Message: "Credentials updated."},
	noticeUsernameTaken:    {Kind: "is-danger", Message: "That username is already taken."},
	noticeWrongPassword:    {Kind: "is-danger", Message: "The current password is wrong."},
}

// noticeFromRequest ignores unknown codes so the query string cannot inject
// arbitrary text into the page.
func noticeFromRequest(r *http.Request) *notice {
	n, ok := notices[r.URL.Query().Get("notice")]
	if !ok {
		return nil
	}
	return &n
}

func withNotice(target, code string) string {
	sep := "?"
	if strings.Contains(target, "?") {
		sep = "&"
	}
	return target + sep + "notice=" + url.QueryEscape(code)
}
