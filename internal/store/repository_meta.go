// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

// metaRepository is the SQL implementation of [MetaRepository] over the
// "usermeta" table.
type metaRepository struct {
	*DB
	logger *logger.Logger
}

// NewMetaRepository constructs a [MetaRepository] backed by db.
func NewMetaRepository(db *DB, logger *logger.Logger) MetaRepository {
	logger.Debug().Msg("creating meta repository")
	return &metaRepository{
		DB:     db,
		logger: logger,
	}
}

// GetMeta returns the value stored under key for userID. ok is false when
// no row exists.
func (r *metaRepository) GetMeta(ctx context.Context, userID int64, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := wrapBuild(r.builder.Select("meta_value").
		From(usermetaTable).
		Where("user_id = ? AND meta_key = ?", userID, key).
		ToSql())
	if err != nil {
		return "", false, err
	}

	var value string
	err = r.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.GetMeta").Int64("user_id", userID).Str("meta_key", key).Msg("failed to read meta")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// SetMeta inserts or overwrites the value under key for userID.
func (r *metaRepository) SetMeta(ctx context.Context, userID int64, key, value string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertMetaQuery(r.builder, userID, key, value)
	if err != nil {
		return err
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == ClassForeignKeyViolation {
			return ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*metaRepository.SetMeta").Int64("user_id", userID).Str("meta_key", key).Msg("failed to upsert meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteMeta removes the row under key for userID. Deleting an absent row is
// not an error.
func (r *metaRepository) DeleteMeta(ctx context.Context, userID int64, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := wrapBuild(r.builder.Delete(usermetaTable).
		Where("user_id = ? AND meta_key = ?", userID, key).
		ToSql())
	if err != nil {
		return err
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*metaRepository.DeleteMeta").Int64("user_id", userID).Str("meta_key", key).Msg("failed to delete meta")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindMetaByPatterns scans every row of key and returns those whose value
// contains at least one of patterns. No patterns match nothing.
func (r *metaRepository) FindMetaByPatterns(ctx context.Context, key string, patterns []string) ([]models.UserMeta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindMetaQuery(r.builder, key, patterns)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*metaRepository.FindMetaByPatterns").Str("meta_key", key).Msg("failed to scan meta")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	metas := make([]models.UserMeta, 0)
	for rows.Next() {
		m := models.UserMeta{Key: key}
		if err := rows.Scan(&m.UserID, &m.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		metas = append(metas, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return metas, nil
}
