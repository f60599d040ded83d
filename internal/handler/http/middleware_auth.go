// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/session"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
)

// withSession enforces cookie-based authentication for the browser flow.
//
// It resolves the session cookie against the session store and, on success,
// places the session in the request context under utils.SessionCtxKey.
// Requests without a valid session are redirected to the login page; no error
// text is shown.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		sess, err := h.sessions.Resolve(cookie.Value)
		if err != nil {
			if errors.Is(err, session.ErrBadCookie) {
				log.Warn().Msg("rejected tampered session cookie")
			}
			h.clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminOnly gates the moderation pages. Non-admin users are silently
// redirected to the home page rather than shown an error.
func (h *Handler) adminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(r)
		if !ok || sess.Role != models.RoleAdmin {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withBearerToken enforces JWT-based authentication for the JSON API.
//
// The validated claims are converted to a models.Session and stored under the
// same context key the cookie middleware uses, so page and API handlers share
// the identity plumbing.
func (h *Handler) withBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.Auth.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		sess := models.Session{
			Username: claims.Subject,
			Role:     models.Role(claims.Role),
		}
		ctx = context.WithValue(ctx, utils.SessionCtxKey, sess)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// apiAdminOnly gates admin API endpoints on the role claim.
func (h *Handler) apiAdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessionFrom(r)
		if !ok || sess.Role != models.RoleAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw "Authorization"
// header value of the form "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
