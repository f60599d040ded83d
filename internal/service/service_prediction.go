// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"
	"errors"
	"math"

	"github.com/Hariharan097/phishing-detection/internal/classifier"
	"github.com/Hariharan097/phishing-detection/internal/features"
	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/models"
)

type predictionService struct {
	encoder    *features.Encoder
	classifier classifier.Classifier
	logger     *logger.Logger
}

// NewPredictionService creates the URL classification service over the given
// encoder and classifier.
func NewPredictionService(encoder *features.Encoder, clf classifier.Classifier, log *logger.Logger) PredictionService {
	return &predictionService{
		encoder:    encoder,
		classifier: clf,
		logger:     log,
	}
}

// Classify runs the full prediction pipeline: normalize the URL, encode it
// into the feature vector, predict the class, and attach a confidence when
// the classifier exposes probabilities.
//
// The returned Prediction carries the normalized URL, not the raw input, so
// history always shows what was actually classified.
func (s *predictionService) Classify(_ context.Context, rawURL string) (models.Prediction, error) {
	url, err := features.NormalizeURL(rawURL)
	if err != nil {
		if errors.Is(err, features.ErrEmptyURL) {
			return models.Prediction{}, ErrEmptyURL
		}
		return models.Prediction{}, err
	}

	vec := s.encoder.Encode(url)

	class, err := s.classifier.Predict(vec)
	if err != nil {
		s.logger.Error().Err(err).Str("url", url).Msg("classifier inference failed")
		return models.Prediction{}, errors.Join(ErrModelFailure, err)
	}

	prediction := models.Prediction{
		URL:   url,
		Label: models.LabelFromClass(class),
	}

	if proba, ok := s.classifier.(classifier.ProbabilityClassifier); ok {
		probs, err := proba.PredictProba(vec)
		if err != nil {
			// The class prediction already succeeded; a probability failure
			// only costs the confidence value.
			s.logger.Warn().Err(err).Str("url", url).Msg("probability estimation failed")
		} else {
			confidence := roundConfidence(probs[class])
			prediction.Confidence = &confidence
		}
	}

	return prediction, nil
}

// roundConfidence converts a probability to a percentage rounded to two
// decimal places, e.g. 0.87345 -> 87.35.
func roundConfidence(p float64) float64 {
	return math.Round(p*10000) / 100
}
