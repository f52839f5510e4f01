// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/assert"
)

func TestHooks_UserListQuery_RunsInOrderAndStops(t *testing.T) {
	h := NewHooks()
	var calls []string

	h.OnUserListQuery(func(_ context.Context, q *models.UserListQuery, _ url.Values) error {
		calls = append(calls, "first")
		q.Include = []int64{1}
		return nil
	})
	h.OnUserListQuery(func(context.Context, *models.UserListQuery, url.Values) error {
		calls = append(calls, "second")
		return errStorage
	})
	h.OnUserListQuery(func(context.Context, *models.UserListQuery, url.Values) error {
		calls = append(calls, "third")
		return nil
	})

	q := models.UserListQuery{}
	err := h.RunUserListQuery(context.Background(), &q, url.Values{})

	assert.ErrorIs(t, err, errStorage)
	assert.Equal(t, []string{"first", "second"}, calls)
	assert.Equal(t, []int64{1}, q.Include)
}

func TestHooks_ProfileSave(t *testing.T) {
	h := NewHooks()
	var got models.TermSubmission

	h.OnProfileSave(func(_ context.Context, _ *models.Actor, userID int64, s models.TermSubmission) error {
		assert.Equal(t, int64(5), userID)
		got = s
		return nil
	})

	want := models.TermSubmission{Present: true, Values: []string{"3"}, Nonce: "n"}
	assert.NoError(t, h.RunProfileSave(context.Background(), adminActor(), 5, want))
	assert.Equal(t, want, got)
}

func TestHooks_Empty(t *testing.T) {
	h := NewHooks()

	assert.NoError(t, h.RunUserListQuery(context.Background(), &models.UserListQuery{}, nil))
	assert.NoError(t, h.RunProfileSave(context.Background(), nil, 1, models.TermSubmission{}))
}
