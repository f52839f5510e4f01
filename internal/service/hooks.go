// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"sync"

	"github.com/MKhiriev/go-user-tags/models"
)

// UserListQueryHook may narrow the user list query of a request.
type UserListQueryHook func(ctx context.Context, query *models.UserListQuery, params url.Values) error

// ProfileSaveHook runs when a profile form is submitted.
type ProfileSaveHook func(ctx context.Context, actor *models.Actor, userID int64, submission models.TermSubmission) error

// Hooks is the set of callbacks the admin screens run at their extension
// points. Callbacks run in registration order; the first error stops the
// chain.
type Hooks struct {
	mu            sync.RWMutex
	userListQuery []UserListQueryHook
	profileSave   []ProfileSaveHook
}

// NewHooks returns an empty hook set.
func NewHooks() *Hooks {
	return &Hooks{}
}

// OnUserListQuery registers fn for the user list query.
func (h *Hooks) OnUserListQuery(fn UserListQueryHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.userListQuery = append(h.userListQuery, fn)
}

// OnProfileSave registers fn for profile submissions.
func (h *Hooks) OnProfileSave(fn ProfileSaveHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.profileSave = append(h.profileSave, fn)
}

// RunUserListQuery runs every user list query hook against query.
func (h *Hooks) RunUserListQuery(ctx context.Context, query *models.UserListQuery, params url.Values) error {
	h.mu.RLock()
	hooks := h.userListQuery
	h.mu.RUnlock()

	for _, fn := range hooks {
		if err := fn(ctx, query, params); err != nil {
			return err
		}
	}
	return nil
}

// RunProfileSave runs every profile save hook.
func (h *Hooks) RunProfileSave(ctx context.Context, actor *models.Actor, userID int64, submission models.TermSubmission) error {
	h.mu.RLock()
	hooks := h.profileSave
	h.mu.RUnlock()

	for _, fn := range hooks {
		if err := fn(ctx, actor, userID, submission); err != nil {
			return err
		}
	}
	return nil
}
