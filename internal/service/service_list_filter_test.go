// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/mock"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestListFilter(t *testing.T) (ListFilter, *mock.MockTagRepository, *mock.MockTermStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	tags := mock.NewMockTagRepository(ctrl)
	terms := mock.NewMockTermStore(ctrl)
	return NewListFilter(UserTagTaxonomy(), tags, terms, logger.Nop()), tags, terms
}

func TestListFilter_FilterControl_NoTerms(t *testing.T) {
	filter, _, terms := newTestListFilter(t)
	terms.EXPECT().ListTerms(gomock.Any(), gomock.Any()).Return([]models.Term{}, nil)

	_, ok, err := filter.FilterControl(context.Background(), models.FilterPositionTop, 0)

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestListFilter_FilterControl_Positions(t *testing.T) {
	all := []models.Term{{TermID: 1, Name: "alpha"}, {TermID: 2, Name: "beta"}}

	tests := []struct {
		name        string
		position    models.FilterPosition
		wantID      string
		wantTrigger string
	}{
		{name: "top", position: models.FilterPositionTop, wantID: "user_tag", wantTrigger: "changeit"},
		{name: "bottom", position: models.FilterPositionBottom, wantID: "user_tag2", wantTrigger: "changeit2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, _, terms := newTestListFilter(t)
			terms.EXPECT().ListTerms(gomock.Any(), models.TermQuery{Taxonomy: models.TaxonomyUserTag}).Return(all, nil)

			control, ok, err := filter.FilterControl(context.Background(), tt.position, 2)

			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.wantID, control.ElementID)
			assert.Equal(t, "user_tag", control.Name)
			assert.Equal(t, tt.wantTrigger, control.Trigger)
			assert.Equal(t, "All User Tags", control.AllLabel)
			assert.Equal(t, []models.FilterOption{
				{ID: 1, Label: "alpha"},
				{ID: 2, Label: "beta", Selected: true},
			}, control.Options)
		})
	}
}

func TestListFilter_ApplyFilter_Unconstrained(t *testing.T) {
	for _, raw := range []string{"", "user_tag=", "user_tag=0", "user_tag=abc", "role=editor"} {
		t.Run(raw, func(t *testing.T) {
			filter, _, _ := newTestListFilter(t)
			params, err := url.ParseQuery(raw)
			require.NoError(t, err)

			query := models.UserListQuery{Page: 1}
			require.NoError(t, filter.ApplyFilter(context.Background(), &query, params))

			assert.Nil(t, query.Include)
		})
	}
}

func TestListFilter_ApplyFilter_UnknownTermMatchesNobody(t *testing.T) {
	filter, _, terms := newTestListFilter(t)
	terms.EXPECT().GetTerm(gomock.Any(), models.TaxonomyUserTag, int64(999)).Return(models.Term{}, store.ErrTermNotFound)

	query := models.UserListQuery{}
	err := filter.ApplyFilter(context.Background(), &query, url.Values{"user_tag": {"999"}})

	require.NoError(t, err)
	assert.Equal(t, []int64{0}, query.Include)
}

func TestListFilter_ApplyFilter_TermWithoutUsersMatchesNobody(t *testing.T) {
	filter, tags, terms := newTestListFilter(t)
	terms.EXPECT().GetTerm(gomock.Any(), models.TaxonomyUserTag, int64(4)).Return(models.Term{TermID: 4}, nil)
	tags.EXPECT().FindUsersByTerm(gomock.Any(), int64(4)).Return([]int64{}, nil)

	query := models.UserListQuery{}
	err := filter.ApplyFilter(context.Background(), &query, url.Values{"user_tag": {"4"}})

	require.NoError(t, err)
	assert.Equal(t, []int64{0}, query.Include)
}

func TestListFilter_ApplyFilter_RestrictsToHolders(t *testing.T) {
	filter, tags, terms := newTestListFilter(t)
	terms.EXPECT().GetTerm(gomock.Any(), models.TaxonomyUserTag, int64(4)).Return(models.Term{TermID: 4}, nil)
	tags.EXPECT().FindUsersByTerm(gomock.Any(), int64(4)).Return([]int64{10, 12}, nil)

	query := models.UserListQuery{}
	err := filter.ApplyFilter(context.Background(), &query, url.Values{"user_tag": {"4"}})

	require.NoError(t, err)
	assert.Equal(t, []int64{10, 12}, query.Include)
}

func TestListFilter_ApplyFilter_Errors(t *testing.T) {
	t.Run("term lookup", func(t *testing.T) {
		filter, _, terms := newTestListFilter(t)
		terms.EXPECT().GetTerm(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Term{}, errStorage)

		err := filter.ApplyFilter(context.Background(), &models.UserListQuery{}, url.Values{"user_tag": {"4"}})
		assert.ErrorIs(t, err, errStorage)
	})

	t.Run("reverse lookup", func(t *testing.T) {
		filter, tags, terms := newTestListFilter(t)
		terms.EXPECT().GetTerm(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Term{TermID: 4}, nil)
		tags.EXPECT().FindUsersByTerm(gomock.Any(), gomock.Any()).Return(nil, errStorage)

		err := filter.ApplyFilter(context.Background(), &models.UserListQuery{}, url.Values{"user_tag": {"4"}})
		assert.ErrorIs(t, err, errStorage)
	})
}

func TestListFilter_NormalizeFilterRequest(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		wantOK bool
		want   url.Values
	}{
		{
			name:   "top trigger",
			raw:    "user_tag=5&changeit=Filter&orderby=login",
			wantOK: true,
			want:   url.Values{"user_tag": {"5"}, "orderby": {"login"}, "filter_action": {"Filter"}},
		},
		{
			name:   "bottom trigger",
			raw:    "user_tag=5&changeit2=Filter",
			wantOK: true,
			want:   url.Values{"user_tag": {"5"}, "filter_action": {"Filter"}},
		},
		{
			name:   "both triggers",
			raw:    "user_tag=5&changeit=&changeit2=",
			wantOK: true,
			want:   url.Values{"user_tag": {"5"}, "filter_action": {"Filter"}},
		},
		{name: "no trigger", raw: "user_tag=5"},
		{name: "empty filter", raw: "user_tag=&changeit=Filter"},
		{name: "nothing", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, _, _ := newTestListFilter(t)
			params, err := url.ParseQuery(tt.raw)
			require.NoError(t, err)

			got, ok := filter.NormalizeFilterRequest(params)

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestListFilter_NormalizeFilterRequest_DoesNotMutateInput(t *testing.T) {
	filter, _, _ := newTestListFilter(t)
	params := url.Values{"user_tag": {"5"}, "changeit": {"Filter"}}

	_, ok := filter.NormalizeFilterRequest(params)

	require.True(t, ok)
	assert.Equal(t, url.Values{"user_tag": {"5"}, "changeit": {"Filter"}}, params)
}
