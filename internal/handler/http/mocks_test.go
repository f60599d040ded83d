// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package http

import (
	"context"
	"testing"
	"time"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/service"
	"github.com/Hariharan097/phishing-detection/internal/session"
	"github.com/Hariharan097/phishing-detection/internal/utils"
	"github.com/Hariharan097/phishing-detection/models"
)

// Per-method stubs for the service interfaces, so each test wires only what
// it exercises.

type stubAuth struct {
	registerFn     func(ctx context.Context, fullName, username, password string) (models.User, error)
	authenticateFn func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (string, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (*utils.APIClaims, error)
}

func (s *stubAuth) Register(ctx context.Context, fullName, username, password string) (models.User, error) {
	return s.registerFn(ctx, fullName, username, password)
}

func (s *stubAuth) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubAuth) EnsureAdmin(_ context.Context) error { return nil }

func (s *stubAuth) CreateToken(ctx context.Context, user models.User) (string, error) {
	return s.createTokenFn(ctx, user)
}

func (s *stubAuth) ParseToken(ctx context.Context, tokenString string) (*utils.APIClaims, error) {
	return s.parseTokenFn(ctx, tokenString)
}

type stubPrediction struct {
	classifyFn func(ctx context.Context, rawURL string) (models.Prediction, error)
}

func (s *stubPrediction) Classify(ctx context.Context, rawURL string) (models.Prediction, error) {
	return s.classifyFn(ctx, rawURL)
}

type stubHistory struct {
	recordFn      func(ctx context.Context, username string, prediction models.Prediction) (models.HistoryRecord, error)
	listByUserFn  func(ctx context.Context, username string, page int) (models.HistoryPage, error)
	listAllFn     func(ctx context.Context, page int) (models.HistoryPage, error)
	labelCountsFn func(ctx context.Context, username string) (models.LabelCounts, error)
}

func (s *stubHistory) Record(ctx context.Context, username string, prediction models.Prediction) (models.HistoryRecord, error) {
	return s.recordFn(ctx, username, prediction)
}

func (s *stubHistory) ListByUser(ctx context.Context, username string, page int) (models.HistoryPage, error) {
	return s.listByUserFn(ctx, username, page)
}

func (s *stubHistory) ListAll(ctx context.Context, page int) (models.HistoryPage, error) {
	return s.listAllFn(ctx, page)
}

func (s *stubHistory) LabelCounts(ctx context.Context, username string) (models.LabelCounts, error) {
	return s.labelCountsFn(ctx, username)
}

type stubAdmin struct {
	approveFn     func(ctx context.Context, userID int64) (models.User, error)
	toggleBlockFn func(ctx context.Context, userID int64) (models.User, error)
	toggleRoleFn  func(ctx context.Context, userID int64) (models.User, error)
	listUsersFn   func(ctx context.Context) ([]models.User, error)
	statsFn       func(ctx context.Context) (models.Stats, error)
}

func (s *stubAdmin) Approve(ctx context.Context, userID int64) (models.User, error) {
	return s.approveFn(ctx, userID)
}

func (s *stubAdmin) ToggleBlock(ctx context.Context, userID int64) (models.User, error) {
	return s.toggleBlockFn(ctx, userID)
}

func (s *stubAdmin) ToggleRole(ctx context.Context, userID int64) (models.User, error) {
	return s.toggleRoleFn(ctx, userID)
}

func (s *stubAdmin) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.listUsersFn(ctx)
}

func (s *stubAdmin) Stats(ctx context.Context) (models.Stats, error) {
	return s.statsFn(ctx)
}

// newTestHandler builds a handler over stubbed services and a real in-memory
// session store, so cookie round-trips behave exactly as in production.
func newTestHandler(t *testing.T, services *service.Services) (*Handler, *session.Store) {
	t.Helper()

	sessions := session.NewStore("test-sign-key", time.Hour, logger.Nop())
	return NewHandler(services, sessions, logger.Nop()), sessions
}

// loginCookieFor creates a live session for the given identity and returns
// its cookie value.
func loginCookieFor(sessions *session.Store, username string, role models.Role) string {
	return sessions.Create(username, role)
}
