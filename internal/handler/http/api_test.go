// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func apiRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func claimsFor(username string, role models.Role) *utils.APIClaims {
	return &utils.APIClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: username},
		Role:             string(role),
	}
}

func TestAPILogin_IssuesToken(t *testing.T) {
	services := &service.Services{
		Auth: &stubAuth{
			authenticateFn: func(_ context.Context, username, password string) (models.User, error) {
				require.Equal(t, "john", username)
				require.Equal(t, "secret123", password)
				return models.User{Username: "john", Role: models.RoleUser, Status: models.StatusActive}, nil
			},
			createTokenFn: func(_ context.Context, user models.User) (string, error) {
				return "signed-token-for-" + user.Username, nil
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodPost, "/api/v1/login", "", `{"username":"john","password":"secret123"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed-token-for-john", rec.Header().Get("Authorization"))

	var resp apiLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token-for-john", resp.Token)
}

func TestAPILogin_StatusGate(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "wrong credentials", err: service.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "pending account", err: service.ErrPendingApproval, wantStatus: http.StatusForbidden},
		{name: "blocked account", err: service.ErrBlocked, wantStatus: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := &service.Services{
				Auth: &stubAuth{
					authenticateFn: func(_ context.Context, _, _ string) (models.User, error) {
						return models.User{}, tt.err
					},
				},
			}
			h, _ := newTestHandler(t, services)
			router := h.Init()

			rec := apiRequest(router, http.MethodPost, "/api/v1/login", "", `{"username":"john","password":"x"}`)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAPILogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t, &service.Services{Auth: &stubAuth{}})
	router := h.Init()

	rec := apiRequest(router, http.MethodPost, "/api/v1/login", "", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPIPredict_ClassifiesAndRecords(t *testing.T) {
	confidence := 92.1
	var recordedFor string

	services := &service.Services{
		Auth: &stubAuth{
			parseTokenFn: func(_ context.Context, tokenString string) (*utils.APIClaims, error) {
				require.Equal(t, "valid-token", tokenString)
				return claimsFor("john", models.RoleUser), nil
			},
		},
		Prediction: &stubPrediction{
			classifyFn: func(_ context.Context, rawURL string) (models.Prediction, error) {
				assert.Equal(t, "http://a.com", rawURL)
				return models.Prediction{URL: "http://a.com", Label: models.LabelPhishing, Confidence: &confidence}, nil
			},
		},
		History: &stubHistory{
			recordFn: func(_ context.Context, username string, _ models.Prediction) (models.HistoryRecord, error) {
				recordedFor = username
				return models.HistoryRecord{ID: 1}, nil
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodPost, "/api/v1/predict", "valid-token", `{"url":"http://a.com"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "john", recordedFor)

	var resp models.Prediction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.LabelPhishing, resp.Label)
	require.NotNil(t, resp.Confidence)
	assert.InDelta(t, 92.1, *resp.Confidence, 1e-9)
}

func TestAPIPredict_RequiresToken(t *testing.T) {
	h, _ := newTestHandler(t, &service.Services{Auth: &stubAuth{}})
	router := h.Init()

	rec := apiRequest(router, http.MethodPost, "/api/v1/predict", "", `{"url":"http://a.com"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIPredict_RejectsInvalidToken(t *testing.T) {
	services := &service.Services{
		Auth: &stubAuth{
			parseTokenFn: func(_ context.Context, _ string) (*utils.APIClaims, error) {
				return nil, service.ErrTokenIsExpiredOrInvalid
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodPost, "/api/v1/predict", "expired", `{"url":"http://a.com"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIHistory_ReturnsCallerPage(t *testing.T) {
	services := &service.Services{
		Auth: &stubAuth{
			parseTokenFn: func(_ context.Context, _ string) (*utils.APIClaims, error) {
				return claimsFor("john", models.RoleUser), nil
			},
		},
		History: &stubHistory{
			listByUserFn: func(_ context.Context, username string, page int) (models.HistoryPage, error) {
				assert.Equal(t, "john", username)
				assert.Equal(t, 2, page)
				return models.HistoryPage{Page: 2, PageSize: 10, Total: 15, TotalPages: 2}, nil
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodGet, "/api/v1/history?page=2", "valid-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.HistoryPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, int64(15), resp.Total)
}

func TestAPIStats_AdminOnly(t *testing.T) {
	services := &service.Services{
		Auth: &stubAuth{
			parseTokenFn: func(_ context.Context, _ string) (*utils.APIClaims, error) {
				return claimsFor("john", models.RoleUser), nil
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodGet, "/api/v1/stats", "user-token", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAPIStats_ReturnsCounters(t *testing.T) {
	services := &service.Services{
		Auth: &stubAuth{
			parseTokenFn: func(_ context.Context, _ string) (*utils.APIClaims, error) {
				return claimsFor("root", models.RoleAdmin), nil
			},
		},
		Admin: &stubAdmin{
			statsFn: func(_ context.Context) (models.Stats, error) {
				return models.Stats{TotalUsers: 4, TotalChecks: 30, PhishingCount: 11}, nil
			},
		},
	}
	h, _ := newTestHandler(t, services)
	router := h.Init()

	rec := apiRequest(router, http.MethodGet, "/api/v1/stats", "admin-token", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.Stats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp.TotalUsers)
	assert.Equal(t, int64(11), resp.PhishingCount)
}
