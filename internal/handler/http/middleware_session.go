// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/utils"
	"github.com/MKhiriev/go-ask-me/models"
)

const sessionCookieName = "qa_session"

// SessionGate answers whether a request belongs to the signed-in admin.
// Handlers and RequireAdmin trust it without re-checking credentials.
type SessionGate interface {
	IsAuthenticatedAdmin(r *http.Request) bool
	CurrentAdminID(r *http.Request) (int64, bool)
}

// ContextSessionGate reads the admin id stored by withSession.
type ContextSessionGate struct{}

func (ContextSessionGate) IsAuthenticatedAdmin(r *http.Request) bool {
	_, ok := utils.GetAdminIDFromContext(r.Context())
	return ok
}

func (ContextSessionGate) CurrentAdminID(r *http.Request) (int64, bool) {
	return utils.GetAdminIDFromContext(r.Context())
}

// withSession loads the admin id from the session cookie into the request
// context. A missing or invalid cookie leaves the request anonymous; an
// invalid one is also cleared.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.SessionService.Parse(ctx, cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Msg("dropping invalid session cookie")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.AdminIDCtxKey, token.AdminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin rejects requests the gate does not recognise as the admin.
// Browsers are sent back to the homepage; XHR and JSON callers get 401.
func RequireAdmin(gate SessionGate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gate.IsAuthenticatedAdmin(r) {
				next.ServeHTTP(w, r)
				return
			}

			logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("admin route requested without session")
			if isXHR(r) {
				_, _ = utils.WriteJSON(w, errorResponse{Error: ErrAdminSessionRequired.Error()}, http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, withNotice("/", noticeLoginRequired), http.StatusSeeOther)
		})
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.String(),
		Path:     "/",
		Expires:  token.ExpiresAt(),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func isXHR(r *http.Request) bool {
	return r.Header.Get("X-Requested-With") == "XMLHttpRequest"
}
