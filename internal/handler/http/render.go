// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/MKhiriev/go-ask-me/internal/logger"
	"github.com/MKhiriev/go-ask-me/internal/service"
	"github.com/MKhiriev/go-ask-me/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	pageHome      = "home"
	pageDashboard = "dashboard"
	pageSettings  = "settings"
	pageProfile   = "profile"
	pageError     = "error"
)

// pageData is the single view model shared by every template.
type pageData struct {
	Title   string
	IsAdmin bool
	Notice  *notice

	Admin    models.Admin
	Listing  models.QuestionPage
	Filter   models.QuestionFilter
	Filters  []models.QuestionFilter
	Stats    models.QuestionStats
	Settings models.Settings

	StatusCode int
	Message    string

	MaxContentLength   int
	DefaultNickname    string
	ConfirmationPhrase string
}

func newPageData(r *http.Request, gate SessionGate, title string) pageData {
	return pageData{
		Title:              title,
		IsAdmin:            gate.IsAuthenticatedAdmin(r),
		Notice:             noticeFromRequest(r),
		MaxContentLength:   service.MaxContentLength,
		DefaultNickname:    service.DefaultNickname,
		ConfirmationPhrase: service.DeleteAllConfirmationPhrase,
	}
}

type pageRenderer struct {
	pages map[string]*template.Template
}

var templateFuncs = template.FuncMap{
	// timestamp matches what the browser-side formatter expects: UTC
	// without a zone suffix.
	"timestamp": func(t time.Time) string {
		return t.UTC().Format("2006-01-02T15:04:05")
	},
	"display": func(t time.Time) string {
		return t.UTC().Format("Jan 2, 2006 15:04 UTC")
	},
	"homeURL": func(page int) string {
		return homeURL(page)
	},
	"dashboardURL": func(page int, filter models.QuestionFilter) string {
		return dashboardURL(page, filter, "")
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}

func newPageRenderer() (*pageRenderer, error) {
	renderer := &pageRenderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{pageHome, pageDashboard, pageSettings, pageProfile, pageError} {
		tmpl, err := template.New("layout.html").
			Funcs(templateFuncs).
			ParseFS(templatesFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing %s template: %w", page, err)
		}
		renderer.pages[page] = tmpl
	}

	return renderer, nil
}

// render executes the page into a buffer first so a template failure never
// leaves a half-written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := h.pages.pages[page]
	if !ok {
		log.Error().Str("page", page).Msg("unknown page template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Err(err).Str("page", page).Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// errorMessages is the text shown on rendered error pages. Storage details
// are never shown.
var errorMessages = map[int]string{
	http.StatusBadRequest:          "The request could not be understood.",
	http.StatusUnauthorized:        "Please log in to continue.",
	http.StatusNotFound:            "The page or question you are looking for does not exist.",
	http.StatusConflict:            "That value is already taken.",
	http.StatusUnprocessableEntity: "The submitted data was rejected.",
	http.StatusTooManyRequests:     "Too many requests. Please slow down and try again later.",
	http.StatusInternalServerError: "Something went wrong on our side. Please try again later.",
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	h.renderStatus(w, r, status)
}

func (h *Handler) renderStatus(w http.ResponseWriter, r *http.Request, status int) {
	data := newPageData(r, h.gate, http.StatusText(status))
	data.Notice = nil
	data.StatusCode = status
	data.Message = errorMessages[status]
	if data.Message == "" {
		data.Message = http.StatusText(status)
	}
	h.render(w, r, status, pageError, data)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderStatus(w, r, http.StatusNotFound)
}

func homeURL(page int) string {
	if page <= 1 {
		return "/"
	}
	return "/?page=" + strconv.Itoa(page)
}

func dashboardURL(page int, filter models.QuestionFilter, noticeCode string) string {
	values := url.Values{}
	if page > 1 {
		values.Set("page", strconv.Itoa(page))
	}
	if filter != "" && filter != models.FilterAll {
		values.Set("filter", string(filter))
	}
	if noticeCode != "" {
		values.Set("notice", noticeCode)
	}
	if len(values) == 0 {
		return "/admin/dashboard"
	}
	return "/admin/dashboard?" + values.Encode()
}
