// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/serial"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

// tagRepository stores assignments as one serialized id list per user under
// the taxonomy's meta key.
type tagRepository struct {
	taxonomy models.Taxonomy
	meta     store.MetaRepository
	terms    store.TermStore
	logger   *logger.Logger
}

// NewTagRepository constructs a [TagRepository] for taxonomy.
func NewTagRepository(taxonomy models.Taxonomy, meta store.MetaRepository, terms store.TermStore, logger *logger.Logger) TagRepository {
	logger.Debug().Msg("creating tag repository")
	return &tagRepository{
		taxonomy: taxonomy,
		meta:     meta,
		terms:    terms,
		logger:   logger,
	}
}

// GetAssignedTermIDs implements [TagRepository].
func (t *tagRepository) GetAssignedTermIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	blob, ok, err := t.meta.GetMeta(ctx, userID, t.taxonomy.MetaKey())
	if err != nil {
		return nil, fmt.Errorf("error reading assignment: %w", err)
	}
	if !ok {
		return []int64{}, nil
	}

	ids, err := serial.DecodeIDs(blob)
	if err != nil {
		log.Warn().Err(err).Str("func", "*tagRepository.GetAssignedTermIDs").Int64("user_id", userID).Msg("malformed assignment treated as empty")
		return []int64{}, nil
	}

	return ids, nil
}

// GetAssignedTerms implements [TagRepository]. Terms keep the stored order.
func (t *tagRepository) GetAssignedTerms(ctx context.Context, userID int64) ([]models.Term, error) {
	ids, err := t.GetAssignedTermIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Term{}, nil
	}

	found, err := t.terms.ListTerms(ctx, models.TermQuery{Taxonomy: t.taxonomy.Name, IDs: ids})
	if err != nil {
		return nil, fmt.Errorf("error resolving assigned terms: %w", err)
	}

	byID := make(map[int64]models.Term, len(found))
	for _, term := range found {
		byID[term.TermID] = term
	}

	terms := make([]models.Term, 0, len(ids))
	for _, id := range ids {
		if term, ok := byID[id]; ok {
			terms = append(terms, term)
		}
	}

	return terms, nil
}

// SetAssignedTerms implements [TagRepository]. Duplicates and ids below 1
// are dropped; first occurrence wins the position.
func (t *tagRepository) SetAssignedTerms(ctx context.Context, userID int64, termIDs []int64) error {
	log := logger.FromContext(ctx)

	ids := normalizeIDs(termIDs)
	if len(ids) == 0 {
		if err := t.meta.DeleteMeta(ctx, userID, t.taxonomy.MetaKey()); err != nil {
			return fmt.Errorf("error clearing assignment: %w", err)
		}
		log.Debug().Int64("user_id", userID).Msg("assignment cleared")
		return nil
	}

	blob, err := serial.EncodeIDs(ids)
	if err != nil {
		return fmt.Errorf("error encoding assignment: %w", err)
	}

	if err := t.meta.SetMeta(ctx, userID, t.taxonomy.MetaKey(), blob); err != nil {
		return fmt.Errorf("error saving assignment: %w", err)
	}

	log.Debug().Int64("user_id", userID).Ints64("term_ids", ids).Msg("assignment saved")
	return nil
}

// FindUsersByTerm implements [TagRepository]. Rows are preselected by
// substring patterns covering every encoding an id can take in a blob, then
// each candidate is decoded so that ids matching only as array indexes are
// not reported.
func (t *tagRepository) FindUsersByTerm(ctx context.Context, termID int64) ([]int64, error) {
	if termID <= 0 {
		return []int64{}, nil
	}

	patterns := []string{
		serial.StringPattern(termID),
		serial.IntPattern(termID),
		serial.TermIDPattern(termID),
	}

	rows, err := t.meta.FindMetaByPatterns(ctx, t.taxonomy.MetaKey(), patterns)
	if err != nil {
		return nil, fmt.Errorf("error scanning assignments: %w", err)
	}

	users := make([]int64, 0, len(rows))
	for _, row := range rows {
		if serial.Contains(row.Value, termID) {
			users = append(users, row.UserID)
		}
	}

	return users, nil
}

func normalizeIDs(termIDs []int64) []int64 {
	seen := make(map[int64]struct{}, len(termIDs))
	ids := make([]int64, 0, len(termIDs))
	for _, id := range termIDs {
		if id <= 0 {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
