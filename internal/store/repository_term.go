// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

// maxSlugAttempts bounds the "-2", "-3", ... suffixes tried when a slug is
// taken.
const maxSlugAttempts = 10

// termRepository is the SQL implementation of [TermStore] over the "terms"
// table.
type termRepository struct {
	*DB
	logger *logger.Logger
}

// NewTermStore constructs a [TermStore] backed by db.
func NewTermStore(db *DB, logger *logger.Logger) TermStore {
	logger.Debug().Msg("creating term store")
	return &termRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTerm stores a new term. Term names may repeat; slugs may not, so a
// taken slug is retried with a numeric suffix.
func (r *termRepository) CreateTerm(ctx context.Context, term models.Term) (models.Term, error) {
	log := logger.FromContext(ctx)

	if term.CreatedAt.IsZero() {
		term.CreatedAt = time.Now().UTC()
	}

	base := term.Slug
	for attempt := 1; attempt <= maxSlugAttempts; attempt++ {
		if attempt > 1 {
			term.Slug = base + "-" + strconv.Itoa(attempt)
		}

		query, args, err := buildInsertTermQuery(r.builder, term)
		if err != nil {
			return models.Term{}, err
		}

		err = r.QueryRowContext(ctx, query, args...).Scan(&term.TermID)
		if err == nil {
			return term, nil
		}

		if r.classify(err) == ClassUniqueViolation {
			log.Debug().Str("func", "*termRepository.CreateTerm").Str("slug", term.Slug).Msg("slug taken, retrying")
			continue
		}

		log.Err(err).Str("func", "*termRepository.CreateTerm").Str("taxonomy", term.Taxonomy).Msg("failed to insert term")
		return models.Term{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return models.Term{}, ErrTermAlreadyExists
}

// UpdateTerm renames a term. A taken slug yields [ErrTermAlreadyExists].
func (r *termRepository) UpdateTerm(ctx context.Context, term models.Term) (models.Term, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateTermQuery(r.builder, term)
	if err != nil {
		return models.Term{}, err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		if r.classify(err) == ClassUniqueViolation {
			return models.Term{}, ErrTermAlreadyExists
		}
		log.Err(err).Str("func", "*termRepository.UpdateTerm").Int64("term_id", term.TermID).Msg("failed to update term")
		return models.Term{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return models.Term{}, ErrTermNotFound
	}

	return r.GetTerm(ctx, term.Taxonomy, term.TermID)
}

// DeleteTerm removes a term. Assignment blobs referencing it are left alone.
func (r *termRepository) DeleteTerm(ctx context.Context, taxonomy string, termID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := wrapBuild(r.builder.Delete(termsTable).
		Where("taxonomy = ? AND term_id = ?", taxonomy, termID).
		ToSql())
	if err != nil {
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*termRepository.DeleteTerm").Int64("term_id", termID).Msg("failed to delete term")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrTermNotFound
	}

	return nil
}

// GetTerm returns a single term of taxonomy.
func (r *termRepository) GetTerm(ctx context.Context, taxonomy string, termID int64) (models.Term, error) {
	terms, err := r.ListTerms(ctx, models.TermQuery{Taxonomy: taxonomy, IDs: []int64{termID}, Limit: 1})
	if err != nil {
		return models.Term{}, err
	}
	if len(terms) == 0 {
		return models.Term{}, ErrTermNotFound
	}
	return terms[0], nil
}

// ListTerms returns the window of terms described by query, ordered by name
// then id.
func (r *termRepository) ListTerms(ctx context.Context, query models.TermQuery) ([]models.Term, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListTermsQuery(r.builder, query)
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).Str("func", "*termRepository.ListTerms").Str("taxonomy", query.Taxonomy).Msg("failed to query terms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	terms := make([]models.Term, 0)
	for rows.Next() {
		var t models.Term
		if err := rows.Scan(&t.TermID, &t.Taxonomy, &t.Name, &t.Slug, &t.CreatedAt); err != nil {
			log.Err(err).Str("func", "*termRepository.ListTerms").Msg("failed to scan term")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		terms = append(terms, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return terms, nil
}

// CountTerms returns the number of terms matching query, ignoring its window.
func (r *termRepository) CountTerms(ctx context.Context, query models.TermQuery) (int, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountTermsQuery(r.builder, query)
	if err != nil {
		return 0, err
	}

	var total int
	if err := r.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*termRepository.CountTerms").Str("taxonomy", query.Taxonomy).Msg("failed to count terms")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return total, nil
}
