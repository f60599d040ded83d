// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

// Stats holds the aggregate counters shown on the admin dashboard and the
// charts page.
type Stats struct {
	TotalUsers    int64 `json:"total_users"`
	TotalChecks   int64 `json:"total_checks"`
	PhishingCount int64 `json:"phishing_count"`
}

// LabelCounts is one user's prediction outcome distribution, rendered as a
// bar chart on the charts page.
type LabelCounts struct {
	Legitimate int64 `json:"legitimate"`
	Phishing   int64 `json:"phishing"`
}

// Total returns the number of records behind the distribution.
func (c LabelCounts) Total() int64 {
	return c.Legitimate + c.Phishing
}
