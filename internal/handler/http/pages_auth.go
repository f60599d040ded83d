// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"errors"
	"net/http"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/store"
)

func (h *Handler) signupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "signup", http.StatusOK, signupView{viewData: pageView(r, "Sign up")})
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderSignupError(w, r, http.StatusBadRequest, "invalid form submission", "", "")
		return
	}

	fullName := r.PostFormValue("fullname")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	_, err := h.services.Auth.Register(ctx, fullName, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			h.renderSignupError(w, r, http.StatusBadRequest, "all fields are required", fullName, username)
		case errors.Is(err, store.ErrUsernameTaken):
			h.renderSignupError(w, r, http.StatusConflict, "username is already taken", fullName, username)
		default:
			log.Err(err).Msg("unexpected error occurred during signup")
			h.renderSignupError(w, r, http.StatusInternalServerError, "something went wrong, please try again", fullName, username)
		}
		return
	}

	http.Redirect(w, r, "/login?registered=1", http.StatusSeeOther)
}

func (h *Handler) renderSignupError(w http.ResponseWriter, r *http.Request, status int, message, fullName, username string) {
	view := signupView{
		viewData: pageView(r, "Sign up"),
		FullName: fullName,
		Username: username,
	}
	view.Error = message
	h.render(w, r, "signup", status, view)
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	view := loginView{viewData: pageView(r, "Log in")}
	if r.URL.Query().Get("registered") == "1" {
		view.Notice = "Account created. You can log in once an administrator approves it."
	}

	h.render(w, r, "login", http.StatusOK, view)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, http.StatusBadRequest, "invalid form submission", "")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.services.Auth.Authenticate(ctx, username, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			h.renderLoginError(w, r, http.StatusUnauthorized, "invalid username or password", username)
		case errors.Is(err, service.ErrPendingApproval):
			h.renderLoginError(w, r, http.StatusForbidden, "your account is awaiting admin approval", username)
		case errors.Is(err, service.ErrBlocked):
			h.renderLoginError(w, r, http.StatusForbidden, "your account has been blocked", username)
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			h.renderLoginError(w, r, http.StatusInternalServerError, "something went wrong, please try again", username)
		}
		return
	}

	cookieValue := h.sessions.Create(user.Username, user.Role)
	h.setSessionCookie(w, cookieValue)

	log.Debug().Str("username", user.Username).Msg("user logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderLoginError(w http.ResponseWriter, r *http.Request, status int, message, username string) {
	view := loginView{
		viewData: pageView(r, "Log in"),
		Username: username,
	}
	view.Error = message
	h.render(w, r, "login", status, view)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		h.sessions.Delete(cookie.Value)
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
