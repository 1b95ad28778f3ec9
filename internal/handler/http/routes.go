// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Compress(5, "text/html", "application/json", "text/plain"))
	router.Use(h.withSession)

	// public pages
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Post("/ask", h.ask)
		r.Post("/admin/login", h.login)
		r.Post("/admin/logout", h.logout)
	})

	// public API
	router.Route("/api", func(r chi.Router) {
		r.Get("/questions", h.listQuestions)
		r.Post("/questions", h.submitQuestion)
		r.Get("/version", h.getServerVersion)
	})

	// admin only
	router.Group(func(r chi.Router) {
		r.Use(RequireAdmin(h.gate))

		r.Get("/admin/dashboard", h.dashboard)

		r.Post("/admin/questions/delete-all", h.deleteAllQuestions)
		r.Route("/admin/questions/{id}", func(r chi.Router) {
			r.Post("/answer", h.answerQuestion)
			r.Post("/edit", h.editQuestion)
			r.Post("/approve", h.approveQuestion)
			r.Post("/reject", h.rejectQuestion)
			r.Post("/delete", h.deleteQuestion)
		})

		r.Get("/admin/settings", h.settings)
		r.Post("/admin/settings", h.saveSettings)
		r.Get("/admin/profile", h.profile)
		r.Post("/admin/profile", h.saveProfile)
		r.Post("/admin/credentials", h.saveCredentials)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}
