// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"net/http"

	"github.com/Hariharan097/phishing-detection/models"
)

// viewData is the part of the render payload every page shares: the title,
// the logged-in session for the navigation bar, and the inline message slots.
type viewData struct {
	Title   string
	Session *models.Session
	Error   string
	Notice  string
}

// pageView builds the shared payload, picking the session up from the
// request context when the page sits behind the auth middleware.
func pageView(r *http.Request, title string) viewData {
	view := viewData{Title: title}
	if sess, ok := sessionFrom(r); ok {
		view.Session = &sess
	}
	return view
}

type signupView struct {
	viewData
	FullName string
	Username string
}

type loginView struct {
	viewData
	Username string
}

type homeView struct {
	viewData
	URL        string
	Prediction *models.Prediction
}

type historyView struct {
	viewData
	Page models.HistoryPage
}

type chartsView struct {
	viewData
	Counts        models.LabelCounts
	LegitimatePct int
	PhishingPct   int
}

type adminDashboardView struct {
	viewData
	Stats models.Stats
}

type adminUsersView struct {
	viewData
	Users []models.User
}

type adminHistoryView struct {
	viewData
	Page models.HistoryPage
}
