// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package service implements the application's business logic: account
// lifecycle and authentication, URL classification, prediction history, and
// the admin moderation workflow. Services depend on repositories and the
// classifier through interfaces and return sentinel errors the transport
// layer matches with errors.Is.
package service

import (
	"github.com/Hariharan097/phishing-detection/internal/classifier"
	"github.com/Hariharan097/phishing-detection/internal/config"
	"github.com/Hariharan097/phishing-detection/internal/features"
	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
)

// Services bundles all application services behind a single constructor so
// the transport layer receives one dependency.
type Services struct {
	Auth       AuthService
	Prediction PredictionService
	History    HistoryService
	Admin      AdminService
}

// Deps carries everything the services need, wired once in main.
type Deps struct {
	Storages   *store.Storages
	Classifier classifier.Classifier
	Encoder    *features.Encoder
	App        config.App
	Admin      config.Admin
	Logger     *logger.Logger
}

// NewServices constructs all services over the given dependencies.
func NewServices(deps Deps) *Services {
	return &Services{
		Auth:       NewAuthService(deps.Storages.UserRepository, deps.App, deps.Admin, deps.Logger),
		Prediction: NewPredictionService(deps.Encoder, deps.Classifier, deps.Logger),
		History:    NewHistoryService(deps.Storages.HistoryRepository, DefaultPageSize, deps.Logger),
		Admin:      NewAdminService(deps.Storages.UserRepository, deps.Storages.HistoryRepository, deps.Logger),
	}
}
