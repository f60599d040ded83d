// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package models

import (
	"fmt"
	"time"
)

// HistoryRecord is an immutable log entry of one prediction made by one
// authenticated user. Records are created exactly once per successful
// prediction and are never updated or deleted.
type HistoryRecord struct {
	ID int64 `json:"-"`

	// Username references the user the prediction was made for. History is
	// keyed by username rather than user ID; see the users table for the
	// account row.
	Username string `json:"username"`

	URL   string `json:"url"`
	Label Label  `json:"label"`

	// Confidence mirrors Prediction.Confidence; nil when the classifier
	// exposed no probability output at prediction time.
	Confidence *float64 `json:"confidence,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the HistoryRecord model.
func (h HistoryRecord) TableName() string {
	return "history"
}

// ConfidenceDisplay renders the confidence for the history table, or "n/a"
// when the classifier exposed none.
func (h HistoryRecord) ConfidenceDisplay() string {
	if h.Confidence == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *h.Confidence)
}

// HistoryPage is one page of history records together with the pagination
// arithmetic the views need.
type HistoryPage struct {
	Records    []HistoryRecord `json:"records"`
	Page       int             `json:"page"`
	PageSize   int             `json:"page_size"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"total_pages"`
}

// Pagination helpers for the templates.

func (p HistoryPage) HasPrev() bool { return p.Page > 1 }
func (p HistoryPage) HasNext() bool { return p.Page < p.TotalPages }
func (p HistoryPage) PrevPage() int { return p.Page - 1 }
func (p HistoryPage) NextPage() int { return p.Page + 1 }
