// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/signup", h.signupPage)
		r.Post("/signup", h.signup)
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
	})

	// browser flow, session cookie required
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.home)
		r.Post("/predict", h.predict)
		r.Get("/history", h.history)
		r.Get("/charts", h.charts)
		r.Get("/logout", h.logout)

		r.Route("/admin", func(r chi.Router) {
			r.Use(h.adminOnly)

			r.Get("/", h.adminDashboard)
			r.Get("/users", h.adminUsers)
			r.Get("/history", h.adminHistory)
			r.Get("/approve/{id}", h.adminApprove)
			r.Get("/toggle_block/{id}", h.adminToggleBlock)
			r.Get("/toggle_role/{id}", h.adminToggleRole)
		})
	})

	// JSON API, bearer token required past login
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", h.apiLogin)

		r.Group(func(r chi.Router) {
			r.Use(h.withBearerToken)

			r.Post("/predict", h.apiPredict)
			r.Get("/history", h.apiHistory)

			r.Group(func(r chi.Router) {
				r.Use(h.apiAdminOnly)
				r.Get("/stats", h.apiStats)
			})
		})
	})

	return router
}
