// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

// FeatureCount is the fixed width of the feature vector the classifier was
// trained on. The artifact loader rejects models trained on any other width.
const FeatureCount = 6

// FeatureVector is the fixed-order numeric summary of a URL used as
// classifier input. The struct form (rather than a bare slice) makes feature
// order and count a compile-time property: the only way to obtain the raw
// values is through Values, which fixes the training order.
type FeatureVector struct {
	// Length is the total character length of the normalized URL.
	Length float64

	// DotCount is the number of '.' characters in the normalized URL.
	DotCount float64

	// HasAtSymbol is 1 when the URL contains '@', else 0.
	HasAtSymbol float64

	// HasIPAddress is 1 when the URL contains a dotted-quad digit pattern.
	// The match is a lightweight heuristic with no octet-range validation.
	HasIPAddress float64

	// IsHTTPS is 1 when the URL scheme is https, else 0.
	IsHTTPS float64

	// TrustedDomain is 1 when the lower-cased host contains a configured
	// trusted domain substring, else 0.
	TrustedDomain float64
}

// Values returns the vector in training order. The classifier must receive
// features in exactly this order.
func (f FeatureVector) Values() [FeatureCount]float64 {
	return [FeatureCount]float64{
		f.Length,
		f.DotCount,
		f.HasAtSymbol,
		f.HasIPAddress,
		f.IsHTTPS,
		f.TrustedDomain,
	}
}
