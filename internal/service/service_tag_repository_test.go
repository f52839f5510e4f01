// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const metaKey = "user_tag_terms"

func TestTagRepository_SetThenGet_DedupesAndDropsNonPositive(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{3, 1, 3, -2, 0, 5}))

	ids, err := repo.GetAssignedTermIDs(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 5}, ids)

	blob, ok, _ := meta.GetMeta(ctx, 7, metaKey)
	require.True(t, ok)
	assert.Equal(t, encodeIDs(t, []int64{3, 1, 5}), blob)
}

func TestTagRepository_SetEmpty_RemovesRecord(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{4}))
	require.True(t, meta.has(7, metaKey))

	require.NoError(t, repo.SetAssignedTerms(ctx, 7, nil))
	assert.False(t, meta.has(7, metaKey))

	ids, err := repo.GetAssignedTermIDs(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTagRepository_SetOnlyInvalid_RemovesRecord(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{4}))
	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{0, -1}))

	assert.False(t, meta.has(7, metaKey))
}

func TestTagRepository_GetAssignedTermIDs_MalformedIsEmpty(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()
	require.NoError(t, meta.SetMeta(ctx, 7, metaKey, "a:2:{i:0;i:3"))

	ids, err := repo.GetAssignedTermIDs(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{}, ids)
}

func TestTagRepository_CorruptLengthPrefix_ReadsAsEmpty(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()
	// matches the integer pattern for 5, so it reaches the decoder
	require.NoError(t, meta.SetMeta(ctx, 7, metaKey, `a:2:{i:0;i:5;i:1;s:9223372036854775807:"5";}`))
	require.NoError(t, meta.SetMeta(ctx, 8, metaKey, encodeIDs(t, []int64{5})))

	var (
		ids   []int64
		users []int64
		err   error
	)
	require.NotPanics(t, func() {
		ids, err = repo.GetAssignedTermIDs(ctx, 7)
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{}, ids)

	require.NotPanics(t, func() {
		users, err = repo.FindUsersByTerm(ctx, 5)
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{8}, users)
}

func TestTagRepository_GetAssignedTermIDs_StringEncoding(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()
	require.NoError(t, meta.SetMeta(ctx, 7, metaKey, `a:2:{i:0;s:1:"9";i:1;s:2:"12";}`))

	ids, err := repo.GetAssignedTermIDs(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, []int64{9, 12}, ids)
}

func TestTagRepository_GetAssignedTerms_DropsUnknownKeepsOrder(t *testing.T) {
	repo, _, terms := newTestTagRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{3, 99, 1}))

	terms.EXPECT().
		ListTerms(gomock.Any(), models.TermQuery{Taxonomy: models.TaxonomyUserTag, IDs: []int64{3, 99, 1}}).
		Return([]models.Term{{TermID: 1, Name: "alpha"}, {TermID: 3, Name: "gamma"}}, nil)

	got, err := repo.GetAssignedTerms(ctx, 7)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].TermID)
	assert.Equal(t, int64(1), got[1].TermID)
}

func TestTagRepository_GetAssignedTerms_NothingAssigned(t *testing.T) {
	repo, _, _ := newTestTagRepository(t)

	got, err := repo.GetAssignedTerms(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, []models.Term{}, got)
}

func TestTagRepository_GetAssignedTerms_StoreError(t *testing.T) {
	repo, _, terms := newTestTagRepository(t)
	ctx := context.Background()
	require.NoError(t, repo.SetAssignedTerms(ctx, 7, []int64{3}))

	terms.EXPECT().ListTerms(gomock.Any(), gomock.Any()).Return(nil, errStorage)

	_, err := repo.GetAssignedTerms(ctx, 7)
	assert.ErrorIs(t, err, errStorage)
}

func TestTagRepository_FindUsersByTerm_AllEncodings(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()

	require.NoError(t, meta.SetMeta(ctx, 10, metaKey, encodeIDs(t, []int64{2, 5})))
	require.NoError(t, meta.SetMeta(ctx, 11, metaKey, `a:1:{i:0;s:1:"5";}`))
	require.NoError(t, meta.SetMeta(ctx, 12, metaKey, `a:1:{i:0;a:1:{s:7:"term_id";i:5;}}`))
	require.NoError(t, meta.SetMeta(ctx, 13, metaKey, encodeIDs(t, []int64{2})))
	require.NoError(t, meta.SetMeta(ctx, 14, "other_terms", encodeIDs(t, []int64{5})))

	users, err := repo.FindUsersByTerm(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, users)
}

func TestTagRepository_FindUsersByTerm_IgnoresArrayIndexMatches(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()

	// Six entries put "i:5;" into the blob as the last index.
	require.NoError(t, meta.SetMeta(ctx, 20, metaKey, encodeIDs(t, []int64{11, 12, 13, 14, 15, 16})))
	require.NoError(t, meta.SetMeta(ctx, 21, metaKey, encodeIDs(t, []int64{5})))

	users, err := repo.FindUsersByTerm(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, []int64{21}, users)
}

func TestTagRepository_FindUsersByTerm_NoMatchIsEmptySlice(t *testing.T) {
	repo, meta, _ := newTestTagRepository(t)
	ctx := context.Background()
	require.NoError(t, meta.SetMeta(ctx, 10, metaKey, encodeIDs(t, []int64{2})))

	users, err := repo.FindUsersByTerm(ctx, 42)

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestTagRepository_FindUsersByTerm_NonPositive(t *testing.T) {
	repo, _, _ := newTestTagRepository(t)

	users, err := repo.FindUsersByTerm(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, []int64{}, users)
}

func TestTagRepository_FindUsersByTerm_AfterSetAndClear(t *testing.T) {
	repo, _, _ := newTestTagRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SetAssignedTerms(ctx, 30, []int64{8}))
	require.NoError(t, repo.SetAssignedTerms(ctx, 31, []int64{8, 9}))

	users, err := repo.FindUsersByTerm(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, []int64{30, 31}, users)

	require.NoError(t, repo.SetAssignedTerms(ctx, 30, nil))

	users, err = repo.FindUsersByTerm(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, []int64{31}, users)
}
