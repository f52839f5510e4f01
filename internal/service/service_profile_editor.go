// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

type profileEditor struct {
	taxonomy   models.Taxonomy
	tags       TagRepository
	terms      store.TermStore
	authorizer Authorizer
	nonces     NonceService
	logger     *logger.Logger
}

// NewProfileEditor constructs a [ProfileEditor] for taxonomy.
func NewProfileEditor(
	taxonomy models.Taxonomy,
	tags TagRepository,
	terms store.TermStore,
	authorizer Authorizer,
	nonces NonceService,
	logger *logger.Logger,
) ProfileEditor {
	logger.Debug().Msg("creating profile editor")
	return &profileEditor{
		taxonomy:   taxonomy,
		tags:       tags,
		terms:      terms,
		authorizer: authorizer,
		nonces:     nonces,
		logger:     logger,
	}
}

// RenderAssignmentControl implements [ProfileEditor]. An actor without the
// assign capability gets ok=false and no error.
func (p *profileEditor) RenderAssignmentControl(ctx context.Context, actor *models.Actor, userID int64) (models.ProfileControl, bool, error) {
	if !p.authorizer.Can(actor, p.taxonomy.Capabilities.AssignTerms) {
		return models.ProfileControl{}, false, nil
	}

	terms, err := p.terms.ListTerms(ctx, models.TermQuery{Taxonomy: p.taxonomy.Name})
	if err != nil {
		return models.ProfileControl{}, false, fmt.Errorf("error listing terms: %w", err)
	}

	assigned, err := p.tags.GetAssignedTermIDs(ctx, userID)
	if err != nil {
		return models.ProfileControl{}, false, err
	}

	selected := make(map[int64]bool, len(assigned))
	for _, id := range assigned {
		selected[id] = true
	}

	return models.ProfileControl{
		Taxonomy: p.taxonomy,
		Terms:    terms,
		Selected: selected,
		Nonce:    p.nonces.Create(actor, ProfileNonceAction(userID)),
	}, true, nil
}

// OnSubmit implements [ProfileEditor]. It fails with [ErrForbidden] when the
// actor may not edit userID and with [ErrInvalidNonce] when the form token
// does not verify. An absent field clears the assignment.
func (p *profileEditor) OnSubmit(ctx context.Context, actor *models.Actor, userID int64, submission models.TermSubmission) error {
	log := logger.FromContext(ctx)

	if !p.authorizer.CanEditUser(actor, userID) {
		log.Warn().Str("func", "*profileEditor.OnSubmit").Int64("user_id", userID).Msg("actor may not edit user")
		return ErrForbidden
	}

	if !p.nonces.Verify(actor, ProfileNonceAction(userID), submission.Nonce) {
		log.Warn().Str("func", "*profileEditor.OnSubmit").Int64("user_id", userID).Msg("nonce check failed")
		return ErrInvalidNonce
	}

	if !submission.Present {
		return p.tags.SetAssignedTerms(ctx, userID, nil)
	}

	ids := make([]int64, 0, len(submission.Values))
	for _, v := range submission.Values {
		ids = append(ids, toInt64(v))
	}

	return p.tags.SetAssignedTerms(ctx, userID, ids)
}
