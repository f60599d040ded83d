// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package store

import (
	"context"
	"fmt"

	"github.com/Hariharan097/phishing-detection/internal/logger"
	"github.com/Hariharan097/phishing-detection/models"
	"github.com/Masterminds/squirrel"
)

// historyRepository implements [HistoryRepository] over the shared [*DB].
// The history table is append-only; pagination queries are built with
// squirrel so limits and offsets stay dialect-independent.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

var historyColumns = []string{"id", "username", "url", "label", "confidence", "created_at"}

// SaveRecord persists one prediction outcome and returns it with the
// server-assigned ID and timestamp.
func (r *historyRepository) SaveRecord(ctx context.Context, record models.HistoryRecord) (models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(record.TableName()).
		Columns("username", "url", "label", "confidence").
		Values(record.Username, record.URL, record.Label, record.Confidence).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveRecord").Msg("error building insert query")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&record.ID, &record.CreatedAt); err != nil {
		log.Err(err).Str("func", "*historyRepository.SaveRecord").Str("username", record.Username).Msg("error inserting history record")
		return models.HistoryRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// ListByUsername returns one page of a user's history, newest first, plus
// the user's total record count.
func (r *historyRepository) ListByUsername(ctx context.Context, username string, page, pageSize int) ([]models.HistoryRecord, int64, error) {
	where := squirrel.Eq{"username": username}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	records, err := r.listPage(ctx, where, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ListAll returns one page of history across all users, newest first, plus
// the total record count.
func (r *historyRepository) ListAll(ctx context.Context, page, pageSize int) ([]models.HistoryRecord, int64, error) {
	total, err := r.count(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	records, err := r.listPage(ctx, nil, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// listPage runs the paginated select. page is 1-based; the offset arithmetic
// lives here so every caller paginates the same way.
func (r *historyRepository) listPage(ctx context.Context, where any, page, pageSize int) ([]models.HistoryRecord, error) {
	log := logger.FromContext(ctx)

	if page < 1 {
		page = 1
	}

	builder := r.db.builder.
		Select(historyColumns...).
		From(models.HistoryRecord{}.TableName()).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(pageSize)).
		Offset(uint64((page - 1) * pageSize))
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.listPage").Msg("error building select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*historyRepository.listPage").Msg("error executing select query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var records []models.HistoryRecord
	for rows.Next() {
		var record models.HistoryRecord
		if err := rows.Scan(&record.ID, &record.Username, &record.URL, &record.Label, &record.Confidence, &record.CreatedAt); err != nil {
			log.Err(err).Str("func", "*historyRepository.listPage").Msg("error scanning history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return records, nil
}

func (r *historyRepository) count(ctx context.Context, where any) (int64, error) {
	log := logger.FromContext(ctx)

	builder := r.db.builder.
		Select("COUNT(*)").
		From(models.HistoryRecord{}.TableName())
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*historyRepository.count").Msg("error counting history records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// CountRecords returns the total number of history records.
func (r *historyRepository) CountRecords(ctx context.Context) (int64, error) {
	return r.count(ctx, nil)
}

// CountByLabel returns the number of records carrying the given label.
func (r *historyRepository) CountByLabel(ctx context.Context, label models.Label) (int64, error) {
	return r.count(ctx, squirrel.Eq{"label": label})
}

// CountByUsernameAndLabel returns the number of one user's records carrying
// the given label. Backs the per-user label distribution chart.
func (r *historyRepository) CountByUsernameAndLabel(ctx context.Context, username string, label models.Label) (int64, error) {
	return r.count(ctx, squirrel.Eq{"username": username, "label": label})
}
