// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWith(id int64, role models.Role, status models.Status) models.User {
	return models.User{ID: id, Username: "john", Role: role, Status: status}
}

func TestApprove_PendingBecomesActive(t *testing.T) {
	var updated *models.Status
	users := &fakeUserRepo{
		findByIDFn: func(_ context.Context, id int64) (models.User, error) {
			return userWith(id, models.RoleUser, models.StatusPending), nil
		},
		updateStatusFn: func(_ context.Context, _ int64, status models.Status) error {
			updated = &status
			return nil
		},
	}
	svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

	user, err := svc.Approve(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.StatusActive, user.Status)
	require.NotNil(t, updated)
	assert.Equal(t, models.StatusActive, *updated)
}

func TestApprove_Idempotent(t *testing.T) {
	tests := []struct {
		name   string
		status models.Status
	}{
		{name: "already active", status: models.StatusActive},
		{name: "blocked stays blocked", status: models.StatusBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{
				findByIDFn: func(_ context.Context, id int64) (models.User, error) {
					return userWith(id, models.RoleUser, tt.status), nil
				},
				updateStatusFn: func(_ context.Context, _ int64, _ models.Status) error {
					t.Fatal("no status update expected")
					return nil
				},
			}
			svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

			user, err := svc.Approve(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.status, user.Status)
		})
	}
}

func TestApprove_UserNotFound(t *testing.T) {
	users := &fakeUserRepo{
		findByIDFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

	_, err := svc.Approve(context.Background(), 99)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestToggleBlock_Transitions(t *testing.T) {
	tests := []struct {
		name       string
		status     models.Status
		wantStatus models.Status
		wantUpdate bool
	}{
		{name: "active becomes blocked", status: models.StatusActive, wantStatus: models.StatusBlocked, wantUpdate: true},
		{name: "blocked returns to active", status: models.StatusBlocked, wantStatus: models.StatusActive, wantUpdate: true},
		{name: "pending untouched", status: models.StatusPending, wantStatus: models.StatusPending, wantUpdate: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updateCalled := false
			users := &fakeUserRepo{
				findByIDFn: func(_ context.Context, id int64) (models.User, error) {
					return userWith(id, models.RoleUser, tt.status), nil
				},
				updateStatusFn: func(_ context.Context, _ int64, status models.Status) error {
					updateCalled = true
					assert.Equal(t, tt.wantStatus, status)
					return nil
				},
			}
			svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

			user, err := svc.ToggleBlock(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, user.Status)
			assert.Equal(t, tt.wantUpdate, updateCalled)
		})
	}
}

func TestToggleRole_Reversible(t *testing.T) {
	tests := []struct {
		name     string
		role     models.Role
		wantRole models.Role
	}{
		{name: "user promoted to admin", role: models.RoleUser, wantRole: models.RoleAdmin},
		{name: "admin demoted to user", role: models.RoleAdmin, wantRole: models.RoleUser},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &fakeUserRepo{
				findByIDFn: func(_ context.Context, id int64) (models.User, error) {
					return userWith(id, tt.role, models.StatusActive), nil
				},
				updateRoleFn: func(_ context.Context, _ int64, role models.Role) error {
					assert.Equal(t, tt.wantRole, role)
					return nil
				},
			}
			svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

			user, err := svc.ToggleRole(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRole, user.Role)
		})
	}
}

func TestListUsers_PassThrough(t *testing.T) {
	expected := []models.User{
		{ID: 1, Username: "john"},
		{ID: 2, Username: "jane"},
	}
	users := &fakeUserRepo{
		listUsersFn: func(_ context.Context) ([]models.User, error) {
			return expected, nil
		},
	}
	svc := NewAdminService(users, &fakeHistoryRepo{}, logger.Nop())

	got, err := svc.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestStats_AggregatesCounts(t *testing.T) {
	users := &fakeUserRepo{
		countUsersFn: func(_ context.Context) (int64, error) { return 5, nil },
	}
	history := &fakeHistoryRepo{
		countRecordsFn: func(_ context.Context) (int64, error) { return 40, nil },
		countByLabelFn: func(_ context.Context, label models.Label) (int64, error) {
			assert.Equal(t, models.LabelPhishing, label)
			return 13, nil
		},
	}
	svc := NewAdminService(users, history, logger.Nop())

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Stats{TotalUsers: 5, TotalChecks: 40, PhishingCount: 13}, stats)
}

func TestStats_AnyCountFailureFails(t *testing.T) {
	countErr := errors.New("count failed")
	users := &fakeUserRepo{
		countUsersFn: func(_ context.Context) (int64, error) { return 5, nil },
	}
	history := &fakeHistoryRepo{
		countRecordsFn: func(_ context.Context) (int64, error) { return 0, countErr },
		countByLabelFn: func(_ context.Context, _ models.Label) (int64, error) { return 0, nil },
	}
	svc := NewAdminService(users, history, logger.Nop())

	_, err := svc.Stats(context.Background())
	assert.ErrorIs(t, err, countErr)
}
