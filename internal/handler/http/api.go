// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/utils"
)

type apiLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type apiLoginResponse struct {
	Token string `json:"token"`
}

type apiPredictRequest struct {
	URL string `json:"url"`
}

// apiLogin verifies credentials and issues a bearer token. The same status
// gate applies as on the login form: pending and blocked accounts get no
// token.
func (h *Handler) apiLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req apiLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.Auth.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Msg("invalid login/password")
			http.Error(w, "invalid username or password", http.StatusUnauthorized)
		case errors.Is(err, service.ErrPendingApproval), errors.Is(err, service.ErrBlocked):
			log.Err(err).Msg("account not allowed to log in")
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			log.Err(err).Msg("unexpected error occurred during API login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	token, err := h.services.Auth.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token))
	if _, err := utils.WriteJSON(w, apiLoginResponse{Token: token}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing login response")
	}
}

// apiPredict classifies a URL and records the outcome in the caller's
// history, mirroring the form flow.
func (h *Handler) apiPredict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req apiPredictRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	prediction, err := h.services.Prediction.Classify(ctx, req.URL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			log.Err(err).Msg("empty url provided")
			http.Error(w, service.ErrEmptyURL.Error(), http.StatusBadRequest)
		default:
			log.Err(err).Msg("classification failed")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	if _, err := h.services.History.Record(ctx, sess.Username, prediction); err != nil {
		log.Err(err).Msg("failed to record prediction history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, prediction, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing prediction response")
	}
}

// apiHistory returns one page of the caller's history.
func (h *Handler) apiHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFrom(r)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	page, err := h.services.History.ListByUser(ctx, sess.Username, pageParam(r))
	if err != nil {
		log.Err(err).Msg("error listing user history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, page, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing history response")
	}
}

// apiStats returns the aggregate counters. Admin only, enforced by the
// routing chain.
func (h *Handler) apiStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.Admin.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("error loading stats")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if _, err := utils.WriteJSON(w, stats, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing stats response")
	}
}
