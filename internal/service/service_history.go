// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package service

import (
	"context"
	"fmt"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/internal/store"
	"github.com/Hariharan097/phishing-detection/models"
	"golang.org/x/sync/errgroup"
)

// DefaultPageSize is the number of history records shown per page.
const DefaultPageSize = 10

type historyService struct {
	history  store.HistoryRepository
	pageSize int
	logger   *logger.Logger
}

// NewHistoryService creates the prediction history service over the given
// repository. A non-positive pageSize falls back to DefaultPageSize.
func NewHistoryService(history store.HistoryRepository, pageSize int, log *logger.Logger) HistoryService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	return &historyService{
		history:  history,
		pageSize: pageSize,
		logger:   log,
	}
}

// Record appends one history entry for the given user. History is append-only;
// there is no update or delete path.
func (s *historyService) Record(ctx context.Context, username string, prediction models.Prediction) (models.HistoryRecord, error) {
	if username == "" {
		return models.HistoryRecord{}, ErrInvalidDataProvided
	}

	record := models.HistoryRecord{
		Username:   username,
		URL:        prediction.URL,
		Label:      prediction.Label,
		Confidence: prediction.Confidence,
	}

	saved, err := s.history.SaveRecord(ctx, record)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", store.ErrHistoryNotSaved, err)
	}

	return saved, nil
}

// ListByUser returns one page of the user's history, newest first.
func (s *historyService) ListByUser(ctx context.Context, username string, page int) (models.HistoryPage, error) {
	if username == "" {
		return models.HistoryPage{}, ErrInvalidDataProvided
	}
	page = clampPage(page)

	records, total, err := s.history.ListByUsername(ctx, username, page, s.pageSize)
	if err != nil {
		return models.HistoryPage{}, err
	}

	return s.buildPage(records, page, total), nil
}

// ListAll returns one page of history across all users, newest first.
func (s *historyService) ListAll(ctx context.Context, page int) (models.HistoryPage, error) {
	page = clampPage(page)

	records, total, err := s.history.ListAll(ctx, page, s.pageSize)
	if err != nil {
		return models.HistoryPage{}, err
	}

	return s.buildPage(records, page, total), nil
}

// LabelCounts returns the user's prediction outcome distribution. The two
// counts are independent queries, so they run concurrently.
func (s *historyService) LabelCounts(ctx context.Context, username string) (models.LabelCounts, error) {
	if username == "" {
		return models.LabelCounts{}, ErrInvalidDataProvided
	}

	var counts models.LabelCounts

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts.Legitimate, err = s.history.CountByUsernameAndLabel(ctx, username, models.LabelLegitimate)
		return err
	})
	g.Go(func() error {
		var err error
		counts.Phishing, err = s.history.CountByUsernameAndLabel(ctx, username, models.LabelPhishing)
		return err
	})

	if err := g.Wait(); err != nil {
		return models.LabelCounts{}, err
	}

	return counts, nil
}

func (s *historyService) buildPage(records []models.HistoryRecord, page int, total int64) models.HistoryPage {
	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))

	return models.HistoryPage{
		Records:    records,
		Page:       page,
		PageSize:   s.pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}

// clampPage coerces invalid page numbers to the first page. Pages past the
// end are left as given and simply yield an empty record list.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}
