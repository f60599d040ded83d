// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/service"
)

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home", http.StatusOK, homeView{viewData: pageView(r, "Check a URL")})
}

func (h *Handler) predict(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderPredictError(w, r, http.StatusBadRequest, "invalid form submission", "")
		return
	}

	rawURL := r.PostFormValue("url")

	prediction, err := h.services.Prediction.Classify(ctx, rawURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			h.renderPredictError(w, r, http.StatusBadRequest, "please enter a URL to check", rawURL)
		case errors.Is(err, service.ErrModelFailure):
			log.Err(err).Msg("classification failed")
			h.renderPredictError(w, r, http.StatusInternalServerError, "could not classify this URL, please try again", rawURL)
		default:
			log.Err(err).Msg("unexpected error occurred during prediction")
			h.renderPredictError(w, r, http.StatusInternalServerError, "something went wrong, please try again", rawURL)
		}
		return
	}

	if _, err := h.services.History.Record(ctx, sess.Username, prediction); err != nil {
		log.Err(err).Msg("failed to record prediction history")
		h.renderPredictError(w, r, http.StatusInternalServerError, "could not save this check, please try again", rawURL)
		return
	}

	view := homeView{
		viewData:   pageView(r, "Check a URL"),
		URL:        prediction.URL,
		Prediction: &prediction,
	}
	h.render(w, r, "home", http.StatusOK, view)
}

func (h *Handler) renderPredictError(w http.ResponseWriter, r *http.Request, status int, message, rawURL string) {
	view := homeView{
		viewData: pageView(r, "Check a URL"),
		URL:      rawURL,
	}
	view.Error = message
	h.render(w, r, "home", status, view)
}

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	page, err := h.services.History.ListByUser(ctx, sess.Username, pageParam(r))
	if err != nil {
		log.Err(err).Msg("error listing user history")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := historyView{
		viewData: pageView(r, "My history"),
		Page:     page,
	}
	h.render(w, r, "history", http.StatusOK, view)
}

func (h *Handler) charts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFrom(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	counts, err := h.services.History.LabelCounts(ctx, sess.Username)
	if err != nil {
		log.Err(err).Msg("error loading label counts")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := chartsView{
		viewData: pageView(r, "My charts"),
		Counts:   counts,
	}
	if total := counts.Total(); total > 0 {
		view.LegitimatePct = int(counts.Legitimate * 100 / total)
		view.PhishingPct = int(counts.Phishing * 100 / total)
	}

	h.render(w, r, "charts", http.StatusOK, view)
}

// pageParam reads the 1-based "page" query parameter. Absent or malformed
// values fall back to the first page.
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
