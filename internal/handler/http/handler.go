// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package http implements the HTTP transport layer of the application: the
// server-rendered pages behind the browser flow, the JSON API, and the
// middleware chain (tracing, logging, session and token authentication, the
// admin gate). Requests are authenticated here and forwarded to the service
// layer; every failure path returns a renderable response.
package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/session"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
)

//go:embed templates
var templateFS embed.FS

// sessionCookieName is the cookie carrying the signed session token.
const sessionCookieName = "session"

type Handler struct {
	services *service.Services
	sessions *session.Store

	// templates maps a page name to its template set (layout + page).
	templates map[string]*template.Template

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Store, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		sessions:  sessions,
		templates: parseTemplates(),
		logger:    logger,
	}
}

// parseTemplates builds one template set per page, each page paired with the
// shared layout. The files are embedded, so a parse failure is a build defect
// and panics at construction rather than surfacing per request.
func parseTemplates() map[string]*template.Template {
	pages := []string{
		"signup",
		"login",
		"home",
		"history",
		"charts",
		"admin_dashboard",
		"admin_users",
		"admin_history",
	}

	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		templates[page] = template.Must(template.ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page+".html",
		))
	}

	return templates
}

// render writes the named page with the given status code. A template
// execution failure at this point means headers are already sent, so it is
// only logged.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, status int, data any) {
	tmpl, ok := h.templates[page]
	if !ok {
		logger.FromRequest(r).Error().Str("page", page).Msg("unknown template requested")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		logger.FromRequest(r).Err(err).Str("page", page).Msg("error rendering template")
	}
}

// sessionFrom returns the session stored in the request context by the
// authentication middleware.
func sessionFrom(r *http.Request) (models.Session, bool) {
	sess, ok := r.Context().Value(utils.SessionCtxKey).(models.Session)
	return sess, ok
}
