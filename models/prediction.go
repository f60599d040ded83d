// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

import "fmt"

// Label is the binary classification outcome for a URL.
type Label string

const (
	LabelLegitimate Label = "legitimate"
	LabelPhishing   Label = "phishing"
)

// LabelFromClass maps the classifier's raw output class to a Label.
// Class 1 means phishing, class 0 means legitimate.
func LabelFromClass(class int) Label {
	if class == 1 {
		return LabelPhishing
	}
	return LabelLegitimate
}

// Prediction is the result of classifying a single URL.
type Prediction struct {
	// URL is the normalized URL the prediction was made for.
	URL string `json:"url"`

	// Label is the predicted class.
	Label Label `json:"label"`

	// Confidence is the probability mass assigned to the predicted class,
	// as a percentage rounded to 2 decimals. Nil when the loaded classifier
	// exposes no probability output.
	Confidence *float64 `json:"confidence,omitempty"`
}

// IsPhishing reports whether the URL was classified as phishing.
func (p Prediction) IsPhishing() bool {
	return p.Label == LabelPhishing
}

// ConfidenceDisplay renders the confidence for the result banner, or "n/a"
// when the classifier exposed none.
func (p Prediction) ConfidenceDisplay() string {
	if p.Confidence == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *p.Confidence)
}
