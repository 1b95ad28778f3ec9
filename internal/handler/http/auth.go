// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("error parsing login form")
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	admin, err := h.services.AdminService.Authenticate(ctx, models.LoginRequest{
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			h.renderError(w, r, err)
			return
		}

		log.Warn().Msg("admin login failed")
		if isXHR(r) {
			_, _ = utils.WriteJSON(w, errorResponse{Error: service.ErrInvalidCredentials.Error()}, http.StatusUnauthorized)
			return
		}
		failed := notices[noticeLoginFailed]
		h.renderHome(w, r, http.StatusUnauthorized, &failed)
		return
	}

	token, err := h.services.SessionService.Issue(ctx, admin)
	if err != nil {
		log.Err(err).Msg("creation of session token failed")
		h.renderStatus(w, r, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, token)
	log.Info().Int64("admin_id", admin.ID).Msg("admin logged in")
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	logger.FromRequest(r).Info().Msg("admin logged out")
	http.Redirect(w, r, withNotice("/", noticeLoggedOut), http.StatusSeeOther)
}
