// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/internal/validators"
	"github.com/MKhiriev/go-user-tags/models"
)

// termsPerPage is the page size of the term management listing.
const termsPerPage = 20

type termService struct {
	taxonomy   models.Taxonomy
	terms      store.TermStore
	authorizer Authorizer
	validator  validators.Validator
	logger     *logger.Logger
}

// NewTermService constructs a [TermService] for taxonomy.
func NewTermService(
	taxonomy models.Taxonomy,
	terms store.TermStore,
	authorizer Authorizer,
	validator validators.Validator,
	logger *logger.Logger,
) TermService {
	logger.Debug().Msg("creating term service")
	return &termService{
		taxonomy:   taxonomy,
		terms:      terms,
		authorizer: authorizer,
		validator:  validator,
		logger:     logger,
	}
}

// CreateTerm implements [TermService]. Requires the manage capability.
func (s *termService) CreateTerm(ctx context.Context, actor *models.Actor, name string) (models.Term, error) {
	if !s.authorizer.Can(actor, s.taxonomy.Capabilities.ManageTerms) {
		return models.Term{}, ErrForbidden
	}

	term, err := s.prepare(ctx, name)
	if err != nil {
		return models.Term{}, err
	}

	created, err := s.terms.CreateTerm(ctx, term)
	if err != nil {
		return models.Term{}, fmt.Errorf("term creation ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("term_id", created.TermID).Str("slug", created.Slug).Msg("term created")
	return created, nil
}

// UpdateTerm implements [TermService]. Requires the edit capability. The
// slug follows the new name.
func (s *termService) UpdateTerm(ctx context.Context, actor *models.Actor, termID int64, name string) (models.Term, error) {
	if !s.authorizer.Can(actor, s.taxonomy.Capabilities.EditTerms) {
		return models.Term{}, ErrForbidden
	}

	term, err := s.prepare(ctx, name)
	if err != nil {
		return models.Term{}, err
	}
	term.TermID = termID

	updated, err := s.terms.UpdateTerm(ctx, term)
	if err != nil {
		return models.Term{}, fmt.Errorf("term update ended with error: %w", err)
	}

	return updated, nil
}

// DeleteTerm implements [TermService]. Requires the delete capability.
// Assignments that reference the term keep the dangling id.
func (s *termService) DeleteTerm(ctx context.Context, actor *models.Actor, termID int64) error {
	if !s.authorizer.Can(actor, s.taxonomy.Capabilities.DeleteTerms) {
		return ErrForbidden
	}

	if err := s.terms.DeleteTerm(ctx, s.taxonomy.Name, termID); err != nil {
		return fmt.Errorf("term deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("term_id", termID).Msg("term deleted")
	return nil
}

// GetTerm implements [TermService]. Requires the manage capability.
func (s *termService) GetTerm(ctx context.Context, actor *models.Actor, termID int64) (models.Term, error) {
	if !s.authorizer.Can(actor, s.taxonomy.Capabilities.ManageTerms) {
		return models.Term{}, ErrForbidden
	}

	return s.terms.GetTerm(ctx, s.taxonomy.Name, termID)
}

// ListTerms implements [TermService]. Requires the manage capability.
func (s *termService) ListTerms(ctx context.Context, actor *models.Actor, req models.SearchRequest) (models.TermPage, error) {
	if !s.authorizer.Can(actor, s.taxonomy.Capabilities.ManageTerms) {
		return models.TermPage{}, ErrForbidden
	}

	req.Search = strings.TrimSpace(req.Search)
	req.Page = max(req.Page, 1)
	if err := s.validator.Validate(ctx, req); err != nil {
		return models.TermPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	query := models.TermQuery{
		Taxonomy: s.taxonomy.Name,
		Search:   req.Search,
		Limit:    termsPerPage,
		Offset:   uint64(req.Page-1) * termsPerPage,
	}

	terms, err := s.terms.ListTerms(ctx, query)
	if err != nil {
		return models.TermPage{}, err
	}

	total, err := s.terms.CountTerms(ctx, query)
	if err != nil {
		return models.TermPage{}, err
	}

	return models.TermPage{
		Terms: terms,
		Total: total,
		Page:  req.Page,
		More:  total > req.Page*termsPerPage,
	}, nil
}

func (s *termService) prepare(ctx context.Context, name string) (models.Term, error) {
	term := models.Term{
		Taxonomy: s.taxonomy.Name,
		Name:     strings.TrimSpace(name),
	}

	if err := s.validator.Validate(ctx, term, validators.FieldName); err != nil {
		return models.Term{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	term.Slug = Slugify(term.Name)
	if term.Slug == "" {
		return models.Term{}, ErrInvalidTermName
	}

	return term, nil
}

// Slugify derives the URL-safe form of a term name: accents are stripped,
// letters are lower-cased, and every run of other characters becomes a
// single hyphen.
func Slugify(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	plain, _, err := transform.String(t, name)
	if err != nil {
		plain = name
	}
	plain = cases.Lower(language.Und).String(plain)

	var b strings.Builder
	hyphen := false
	for _, r := range plain {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}

	return b.String()
}
