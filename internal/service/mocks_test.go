// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"

	"github.com/Hariharan097/phishing-detection/models"
)

// fakeUserRepo implements store.UserRepository with per-method hooks so each
// test wires only what it exercises.
type fakeUserRepo struct {
	createUserFn   func(ctx context.Context, user models.User) (models.User, error)
	findByNameFn   func(ctx context.Context, username string) (models.User, error)
	findByIDFn     func(ctx context.Context, id int64) (models.User, error)
	listUsersFn    func(ctx context.Context) ([]models.User, error)
	updateStatusFn func(ctx context.Context, id int64, status models.Status) error
	updateRoleFn   func(ctx context.Context, id int64, role models.Role) error
	countUsersFn   func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserRepo) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return f.findByNameFn(ctx, username)
}

func (f *fakeUserRepo) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id int64, status models.Status) error {
	return f.updateStatusFn(ctx, id, status)
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	return f.updateRoleFn(ctx, id, role)
}

func (f *fakeUserRepo) CountUsers(ctx context.Context) (int64, error) {
	return f.countUsersFn(ctx)
}

// fakeHistoryRepo implements store.HistoryRepository.
type fakeHistoryRepo struct {
	saveRecordFn   func(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error)
	listByUserFn   func(ctx context.Context, username string, page, pageSize int) ([]models.HistoryRecord, int64, error)
	listAllFn      func(ctx context.Context, page, pageSize int) ([]models.HistoryRecord, int64, error)
	countRecordsFn func(ctx context.Context) (int64, error)
	countByLabelFn func(ctx context.Context, label models.Label) (int64, error)
	countByUserFn  func(ctx context.Context, username string, label models.Label) (int64, error)
}

func (f *fakeHistoryRepo) SaveRecord(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	return f.saveRecordFn(ctx, record)
}

func (f *fakeHistoryRepo) ListByUsername(ctx context.Context, username string, page, pageSize int) ([]models.HistoryRecord, int64, error) {
	return f.listByUserFn(ctx, username, page, pageSize)
}

func (f *fakeHistoryRepo) ListAll(ctx context.Context, page, pageSize int) ([]models.HistoryRecord, int64, error) {
	return f.listAllFn(ctx, page, pageSize)
}

func (f *fakeHistoryRepo) CountRecords(ctx context.Context) (int64, error) {
	return f.countRecordsFn(ctx)
}

func (f *fakeHistoryRepo) CountByLabel(ctx context.Context, label models.Label) (int64, error) {
	return f.countByLabelFn(ctx, label)
}

func (f *fakeHistoryRepo) CountByUsernameAndLabel(ctx context.Context, username string, label models.Label) (int64, error) {
	return f.countByUserFn(ctx, username, label)
}

// fakeClassifier is a classifier without the probability capability.
type fakeClassifier struct {
	class int
	err   error
}

func (f *fakeClassifier) Predict(_ models.FeatureVector) (int, error) {
	return f.class, f.err
}

// fakeProbaClassifier additionally exposes per-class probabilities.
type fakeProbaClassifier struct {
	fakeClassifier
	probs    [2]float64
	probaErr error
}

func (f *fakeProbaClassifier) PredictProba(_ models.FeatureVector) ([2]float64, error) {
	return f.probs, f.probaErr
}
