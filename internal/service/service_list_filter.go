// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

// noUsers is the include set that matches no user, so a filter that finds
// nobody never falls back to listing everyone.
var noUsers = []int64{0}

type listFilter struct {
	taxonomy models.Taxonomy
	tags     TagRepository
	terms    store.TermStore
	logger   *logger.Logger
}

// NewListFilter constructs a [ListFilter] for taxonomy.
func NewListFilter(taxonomy models.Taxonomy, tags TagRepository, terms store.TermStore, logger *logger.Logger) ListFilter {
	logger.Debug().Msg("creating list filter")
	return &listFilter{
		taxonomy: taxonomy,
		tags:     tags,
		terms:    terms,
		logger:   logger,
	}
}

// FilterControl implements [ListFilter]. The bottom control gets the element
// id suffix "2" so both controls stay addressable.
func (f *listFilter) FilterControl(ctx context.Context, position models.FilterPosition, selected int64) (models.FilterControl, bool, error) {
	terms, err := f.terms.ListTerms(ctx, models.TermQuery{Taxonomy: f.taxonomy.Name})
	if err != nil {
		return models.FilterControl{}, false, fmt.Errorf("error listing terms: %w", err)
	}
	if len(terms) == 0 {
		return models.FilterControl{}, false, nil
	}

	control := models.FilterControl{
		ElementID: f.taxonomy.Name,
		Name:      f.taxonomy.Name,
		Trigger:   models.FilterTriggerTop,
		AllLabel:  f.taxonomy.Labels.AllItems,
		Options:   make([]models.FilterOption, 0, len(terms)),
	}
	if position == models.FilterPositionBottom {
		control.ElementID = f.taxonomy.Name + "2"
		control.Trigger = models.FilterTriggerBottom
	}

	for _, term := range terms {
		control.Options = append(control.Options, models.FilterOption{
			ID:       term.TermID,
			Label:    term.Name,
			Selected: term.TermID == selected,
		})
	}

	return control, true, nil
}

// ApplyFilter implements [ListFilter].
//
// An absent, empty, zero or non-numeric parameter leaves query unfiltered.
// A term that does not exist, or that nobody holds, yields an include set
// matching no user.
func (f *listFilter) ApplyFilter(ctx context.Context, query *models.UserListQuery, params url.Values) error {
	log := logger.FromContext(ctx)

	if !params.Has(f.taxonomy.Name) {
		return nil
	}

	termID := toInt64(params.Get(f.taxonomy.Name))
	if termID == 0 {
		return nil
	}

	if _, err := f.terms.GetTerm(ctx, f.taxonomy.Name, termID); err != nil {
		if errors.Is(err, store.ErrTermNotFound) {
			log.Debug().Int64("term_id", termID).Msg("filter term does not exist")
			query.Include = noUsers
			return nil
		}
		return fmt.Errorf("error resolving filter term: %w", err)
	}

	users, err := f.tags.FindUsersByTerm(ctx, termID)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		users = noUsers
	}

	query.Include = users
	return nil
}

// NormalizeFilterRequest implements [ListFilter]. It applies when the filter
// parameter is non-empty and either apply button was pressed: the marker is
// added and both buttons are removed.
func (f *listFilter) NormalizeFilterRequest(params url.Values) (url.Values, bool) {
	if params.Get(f.taxonomy.Name) == "" {
		return nil, false
	}
	if !params.Has(models.FilterTriggerTop) && !params.Has(models.FilterTriggerBottom) {
		return nil, false
	}

	normalized := make(url.Values, len(params))
	for k, v := range params {
		normalized[k] = append([]string(nil), v...)
	}

	normalized.Set(models.FilterActionParam, models.FilterActionValue)
	normalized.Del(models.FilterTriggerTop)
	normalized.Del(models.FilterTriggerBottom)

	return normalized, true
}
