// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"context"
	"testing"
	"time"

	"net/http"

	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/stretchr/testify/assert"
)

func TestAdminUsers_RendersModerationTable(t *testing.T) {
	services := &service.Services{
		Admin: &stubAdmin{
			listUsersFn: func(_ context.Context) ([]models.User, error) {
				return []models.User{
					{ID: 1, FullName: "John Smith", Username: "john", Role: models.RoleUser, Status: models.StatusPending, CreatedAt: time.Now()},
					{ID: 2, FullName: "Jane Roe", Username: "jane", Role: models.RoleAdmin, Status: models.StatusActive, CreatedAt: time.Now()},
				}, nil
			},
		},
	}
	h, sessions := newTestHandler(t, services)
	router := h.Init()

	cookieValue := loginCookieFor(sessions, "root", models.RoleAdmin)
	rec := getWithCookie(router, "/admin/users", cookieValue)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "/admin/approve/1")
	assert.Contains(t, body, "/admin/toggle_block/2")
	assert.Contains(t, body, "Demote")
}

func TestAdminModeration_CallsServiceAndRedirects(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "approve", path: "/admin/approve/5"},
		{name: "toggle block", path: "/admin/toggle_block/5"},
		{name: "toggle role", path: "/admin/toggle_role/5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID int64
			record := func(_ context.Context, userID int64) (models.User, error) {
				gotID = userID
				return models.User{ID: userID}, nil
			}
			services := &service.Services{
				Admin: &stubAdmin{approveFn: record, toggleBlockFn: record, toggleRoleFn: record},
			}
			h, sessions := newTestHandler(t, services)
			router := h.Init()

			cookieValue := loginCookieFor(sessions, "root", models.RoleAdmin)
			rec := getWithCookie(router, tt.path, cookieValue)

			assert.Equal(t, http.StatusSeeOther, rec.Code)
			assert.Equal(t, "/admin/users", rec.Header().Get("Location"))
			assert.Equal(t, int64(5), gotID)
		})
	}
}

func TestAdminModeration_UnknownUserStillRedirects(t *testing.T) {
	services := &service.Services{
		Admin: &stubAdmin{
			approveFn: func(_ context.Context, _ int64) (models.User, error) {
				return models.User{}, store.ErrUserNotFound
			},
		},
	}
	h, sessions := newTestHandler(t, services)
	router := h.Init()

	cookieValue := loginCookieFor(sessions, "root", models.RoleAdmin)
	rec := getWithCookie(router, "/admin/approve/99", cookieValue)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/users", rec.Header().Get("Location"))
}

func TestAdminModeration_MalformedIDRedirects(t *testing.T) {
	services := &service.Services{
		Admin: &stubAdmin{
			approveFn: func(_ context.Context, _ int64) (models.User, error) {
				t.Fatal("service must not be called for a malformed id")
				return models.User{}, nil
			},
		},
	}
	h, sessions := newTestHandler(t, services)
	router := h.Init()

	cookieValue := loginCookieFor(sessions, "root", models.RoleAdmin)
	rec := getWithCookie(router, "/admin/approve/banana", cookieValue)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/users", rec.Header().Get("Location"))
}

func TestAdminHistory_ListsAllUsers(t *testing.T) {
	services := &service.Services{
		History: &stubHistory{
			listAllFn: func(_ context.Context, page int) (models.HistoryPage, error) {
				assert.Equal(t, 2, page)
				return models.HistoryPage{
					Records: []models.HistoryRecord{
						{ID: 3, Username: "jane", URL: "http://b.com", Label: models.LabelLegitimate},
					},
					Page: 2, PageSize: 10, Total: 11, TotalPages: 2,
				}, nil
			},
		},
	}
	h, sessions := newTestHandler(t, services)
	router := h.Init()

	cookieValue := loginCookieFor(sessions, "root", models.RoleAdmin)
	rec := getWithCookie(router, "/admin/history?page=2", cookieValue)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "jane")
	assert.Contains(t, rec.Body.String(), "http://b.com")
}
