// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/internal/validators"
	"github.com/MKhiriev/go-user-tags/models"
)

type searchService struct {
	taxonomy  models.Taxonomy
	terms     store.TermStore
	validator validators.Validator
	logger    *logger.Logger
}

// NewSearchService constructs a [SearchService] over the terms of taxonomy.
func NewSearchService(taxonomy models.Taxonomy, terms store.TermStore, validator validators.Validator, logger *logger.Logger) SearchService {
	logger.Debug().Msg("creating search service")
	return &searchService{
		taxonomy:  taxonomy,
		terms:     terms,
		validator: validator,
		logger:    logger,
	}
}

// Search implements [SearchService]. Pages below 1 are read as page 1 and
// pages past [models.MaxSearchPage] are empty. Results are ordered by name,
// then id.
func (s *searchService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error) {
	log := logger.FromContext(ctx)

	req.Search = strings.TrimSpace(req.Search)
	req.Page = max(req.Page, 1)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*searchService.Search").Msg("invalid search request")
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// the offset of later pages overflows
	if req.Page > models.MaxSearchPage {
		log.Debug().Str("func", "*searchService.Search").Int("page", req.Page).Msg("page beyond any result set")
		return models.SearchResult{Results: []models.SearchItem{}}, nil
	}

	query := models.TermQuery{
		Taxonomy: s.taxonomy.Name,
		Search:   req.Search,
		Limit:    models.SearchPageSize,
		Offset:   uint64(req.Page-1) * models.SearchPageSize,
	}

	terms, err := s.terms.ListTerms(ctx, query)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("error searching terms: %w", err)
	}

	total, err := s.terms.CountTerms(ctx, query)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("error counting terms: %w", err)
	}

	result := models.SearchResult{Results: make([]models.SearchItem, 0, len(terms))}
	for _, t := range terms {
		result.Results = append(result.Results, models.SearchItem{ID: t.TermID, Text: t.Name})
	}
	result.Pagination.More = total > req.Page*models.SearchPageSize

	return result, nil
}
