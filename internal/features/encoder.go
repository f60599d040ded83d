// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

// Package features turns a URL string into the fixed-order numeric feature
// vector the classifier was trained on.
//
// Encoding is pure, total and deterministic: any string input, including the
// empty string, produces a vector without error. Malformed URLs simply yield
// degenerate feature values.
package features

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Hariharan097/phishing-detection/models"
)

// ErrEmptyURL is returned by NormalizeURL when the trimmed input is empty.
var ErrEmptyURL = errors.New("empty url")

// ipPattern is a greedy digit-dot-digit-dot-digit-dot-digit heuristic.
// It intentionally performs no octet-range validation, so "999.999.999.999"
// matches; this mirrors the distribution the model was trained on.
var ipPattern = regexp.MustCompile(`[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+`)

// Encoder computes feature vectors against a configured trusted-domain
// allow-list. It is safe for concurrent use; all state is read-only after
// construction.
type Encoder struct {
	trusted []string
}

// NewEncoder constructs an Encoder. An empty trusted list falls back to
// [DefaultTrustedDomains]. The entries are lower-cased once at construction
// so the per-URL check never allocates.
func NewEncoder(trusted []string) *Encoder {
	if len(trusted) == 0 {
		trusted = DefaultTrustedDomains
	}

	lowered := make([]string, len(trusted))
	for i, domain := range trusted {
		lowered[i] = strings.ToLower(domain)
	}

	return &Encoder{trusted: lowered}
}

// NormalizeURL trims the raw input and prefixes "http://" when neither
// "http://" nor "https://" is already present.
//
// Returns ErrEmptyURL when the trimmed input is empty. No further validation
// is performed; malformed URLs pass through unchanged.
func NormalizeURL(raw string) (string, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return "", ErrEmptyURL
	}

	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}

	return url, nil
}

// Encode maps a URL string to its feature vector. The input is used as given;
// callers wanting the scheme-prefixing behaviour must run NormalizeURL first.
func (e *Encoder) Encode(url string) models.FeatureVector {
	return models.FeatureVector{
		// Character count, not byte count: the model was trained on
		// codepoint lengths, so multi-byte hosts must not inflate this.
		Length:        float64(utf8.RuneCountInString(url)),
		DotCount:      float64(strings.Count(url, ".")),
		HasAtSymbol:   boolFeature(strings.Contains(url, "@")),
		HasIPAddress:  boolFeature(ipPattern.MatchString(url)),
		IsHTTPS:       boolFeature(strings.HasPrefix(url, "https")),
		TrustedDomain: boolFeature(e.isTrustedHost(hostOf(url))),
	}
}

// isTrustedHost reports whether the lower-cased host contains any trusted
// domain substring. An empty host never matches.
func (e *Encoder) isTrustedHost(host string) bool {
	if host == "" {
		return false
	}

	host = strings.ToLower(host)
	for _, domain := range e.trusted {
		if strings.Contains(host, domain) {
			return true
		}
	}

	return false
}

// hostOf extracts the network location of a URL: everything between the
// "://" separator and the next "/". A URL without a scheme separator has no
// parseable host and yields the empty string.
func hostOf(url string) string {
	_, rest, found := strings.Cut(url, "://")
	if !found {
		return ""
	}

	host, _, _ := strings.Cut(rest, "/")
	return host
}

func boolFeature(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
