// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) adminDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	stats, err := h.services.Admin.Stats(ctx)
	if err != nil {
		log.Err(err).Msg("error loading dashboard stats")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := adminDashboardView{
		viewData: pageView(r, "Admin dashboard"),
		Stats:    stats,
	}
	h.render(w, r, "admin_dashboard", http.StatusOK, view)
}

func (h *Handler) adminUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.Admin.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error listing users")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := adminUsersView{
		viewData: pageView(r, "Manage users"),
		Users:    users,
	}
	h.render(w, r, "admin_users", http.StatusOK, view)
}

func (h *Handler) adminHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	page, err := h.services.History.ListAll(ctx, pageParam(r))
	if err != nil {
		log.Err(err).Msg("error listing global history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := adminHistoryView{
		viewData: pageView(r, "All history"),
		Page:     page,
	}
	h.render(w, r, "admin_history", http.StatusOK, view)
}

func (h *Handler) adminApprove(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "approve", h.services.Admin.Approve)
}

func (h *Handler) adminToggleBlock(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "toggle_block", h.services.Admin.ToggleBlock)
}

func (h *Handler) adminToggleRole(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, "toggle_role", h.services.Admin.ToggleRole)
}

// moderate runs one moderation action against the user ID from the URL and
// redirects back to the user list. A malformed or unknown ID redirects too;
// moderation links are never a dead end for the admin.
func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, action string, fn func(ctx context.Context, userID int64) (models.User, error)) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Warn().Str("action", action).Str("id", chi.URLParam(r, "id")).Msg("malformed user id in moderation URL")
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	if _, err := fn(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("action", action).Int64("user_id", id).Msg("moderation target does not exist")
		} else {
			log.Err(err).Str("action", action).Int64("user_id", id).Msg("moderation action failed")
		}
	}

	http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
}
