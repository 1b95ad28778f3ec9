// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/store"
	"github.com/MKhiriev/go-ask-me/models"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.renderHome(w, r, http.StatusOK, nil)
}

// renderHome draws the public page. A non-nil override replaces the notice
// taken from the query string.
func (h *Handler) renderHome(w http.ResponseWriter, r *http.Request, status int, override *notice) {
	ctx := r.Context()

	listing, err := h.services.QuestionService.List(ctx, models.ListRequest{
		Page:     parsePage(r),
		Audience: models.AudiencePublic,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if listing.IsRedirect() {
		http.Redirect(w, r, homeURL(listing.RedirectPage), http.StatusFound)
		return
	}

	admin, err := h.services.AdminService.Profile(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := newPageData(r, h.gate, admin.DisplayName)
	data.Admin = admin
	data.Listing = listing
	if override != nil {
		data.Notice = override
	}
	h.render(w, r, status, pageHome, data)
}

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing question form")
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	question, err := h.services.QuestionService.Submit(r.Context(), models.QuestionSubmission{
		Content:  r.PostForm.Get("content"),
		Nickname: r.PostForm.Get("nickname"),
	})
	switch {
	case errors.Is(err, service.ErrEmptyContent):
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	case errors.Is(err, service.ErrContentTooLong):
		http.Redirect(w, r, withNotice("/", noticeTooLong), http.StatusSeeOther)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	code := noticeSubmitted
	if question.IsPending() {
		code = noticePending
	}
	http.Redirect(w, r, withNotice("/", code), http.StatusSeeOther)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := parseFilter(r)

	listing, err := h.services.QuestionService.List(ctx, models.ListRequest{
		Page:     parsePage(r),
		Filter:   filter,
		Audience: models.AudienceAdmin,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if listing.IsRedirect() {
		http.Redirect(w, r, dashboardURL(listing.RedirectPage, filter, ""), http.StatusFound)
		return
	}

	stats, err := h.services.QuestionService.Stats(ctx)
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := newPageData(r, h.gate, "Dashboard")
	data.Listing = listing
	data.Filter = filter
	data.Filters = models.Filters()
	data.Stats = stats
	h.render(w, r, http.StatusOK, pageDashboard, data)
}

func (h *Handler) settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.Get(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := newPageData(r, h.gate, "Settings")
	data.Settings = settings
	h.render(w, r, http.StatusOK, pageSettings, data)
}

// saveSettings treats an absent checkbox as "off", which is how browsers
// submit an unchecked box.
func (h *Handler) saveSettings(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	enabled := r.PostForm.Get("moderation_enabled") != ""
	if err := h.services.SettingsService.SetModeration(r.Context(), enabled); err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Bool("moderation_enabled", enabled).Msg("moderation setting changed")
	http.Redirect(w, r, withNotice("/admin/settings", noticeSettingsSaved), http.StatusSeeOther)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	admin, err := h.services.AdminService.Profile(r.Context())
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	data := newPageData(r, h.gate, "Profile")
	data.Admin = admin
	h.render(w, r, http.StatusOK, pageProfile, data)
}

func (h *Handler) saveProfile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}
	adminID, _ := h.gate.CurrentAdminID(r)

	err := h.services.AdminService.UpdateProfile(r.Context(), models.ProfileUpdate{
		AdminID:      adminID,
		DisplayName:  r.PostForm.Get("display_name"),
		Introduction: r.PostForm.Get("introduction"),
	})
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		http.Redirect(w, r, withNotice("/admin/profile", noticeInvalidInput), http.StatusSeeOther)
		return
	case err != nil:
		h.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, withNotice("/admin/profile", noticeProfileSaved), http.StatusSeeOther)
}

func (h *Handler) saveCredentials(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}
	adminID, _ := h.gate.CurrentAdminID(r)

	err := h.services.AdminService.UpdateCredentials(r.Context(), models.CredentialsUpdate{
		AdminID:         adminID,
		CurrentPassword: r.PostForm.Get("current_password"),
		Username:        r.PostForm.Get("username"),
		NewPassword:     r.PostForm.Get("new_password"),
	})
	if err != nil {
		if code, ok := credentialsNotice(err); ok {
			http.Redirect(w, r, withNotice("/admin/profile", code), http.StatusSeeOther)
			return
		}
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("admin_id", adminID).Msg("admin credentials changed")
	http.Redirect(w, r, withNotice("/admin/profile", noticeCredentialsSaved), http.StatusSeeOther)
}

func credentialsNotice(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return noticeWrongPassword, true
	case errors.Is(err, service.ErrInvalidInput):
		return noticeInvalidInput, true
	case errors.Is(err, store.ErrUsernameTaken):
		return noticeUsernameTaken, true
	default:
		return "", false
	}
}
