// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package classifier loads the pre-trained phishing model artifact and runs
// inference over feature vectors.
//
// The artifact is produced by an offline training step and is loaded exactly
// once at process start. Everything after Load is in-memory, bounded and
// allocation-free, so inference never blocks a request on I/O.
package classifier

import "github.com/Hariharan097/phishing-detection/models"

// Classifier is the minimal contract the prediction service requires:
// map a feature vector to a binary class, 0 = legitimate, 1 = phishing.
type Classifier interface {
	Predict(vec models.FeatureVector) (int, error)
}

// ProbabilityClassifier is the optional capability of exposing per-class
// probabilities. Callers type-assert on it; a classifier without it simply
// yields predictions with no confidence value.
type ProbabilityClassifier interface {
	// PredictProba returns the probability mass per class, index 0 for
	// legitimate and index 1 for phishing, summing to 1.0.
	PredictProba(vec models.FeatureVector) ([2]float64, error)
}
