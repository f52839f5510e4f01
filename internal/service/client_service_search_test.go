// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/mock"
	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientSearch(t *testing.T) (ClientSearchService, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	return NewClientSearchService(srv, logger.Nop()), srv
}

func TestClientSearchService_FetchesNonceOnce(t *testing.T) {
	svc, srv := newTestClientSearch(t)
	ctx := context.Background()
	page := models.SearchResult{Results: []models.SearchItem{{ID: 1, Text: "alpha"}}}

	srv.EXPECT().SearchNonce(gomock.Any()).Return("n1", nil).Times(1)
	srv.EXPECT().Search(gomock.Any(), "n1", models.SearchRequest{Search: "al", Page: 1}).Return(page, nil)
	srv.EXPECT().Search(gomock.Any(), "n1", models.SearchRequest{Search: "al", Page: 2}).Return(models.SearchResult{Results: []models.SearchItem{}}, nil)

	got, err := svc.Search(ctx, models.SearchRequest{Search: " al ", Page: 0})
	require.NoError(t, err)
	assert.Equal(t, page, got)

	_, err = svc.Search(ctx, models.SearchRequest{Search: "al", Page: 2})
	require.NoError(t, err)
}

func TestClientSearchService_RefreshesRejectedNonce(t *testing.T) {
	svc, srv := newTestClientSearch(t)
	req := models.SearchRequest{Page: 1}

	gomock.InOrder(
		srv.EXPECT().SearchNonce(gomock.Any()).Return("old", nil),
		srv.EXPECT().Search(gomock.Any(), "old", req).Return(models.SearchResult{}, adapter.ErrSecurityCheckFailed),
		srv.EXPECT().SearchNonce(gomock.Any()).Return("new", nil),
		srv.EXPECT().Search(gomock.Any(), "new", req).Return(models.SearchResult{Results: []models.SearchItem{}}, nil),
	)

	_, err := svc.Search(context.Background(), req)
	require.NoError(t, err)
}

func TestClientSearchService_RefreshesOnlyOnce(t *testing.T) {
	svc, srv := newTestClientSearch(t)

	srv.EXPECT().SearchNonce(gomock.Any()).Return("n", nil).Times(2)
	srv.EXPECT().Search(gomock.Any(), "n", gomock.Any()).Return(models.SearchResult{}, adapter.ErrSecurityCheckFailed).Times(2)

	_, err := svc.Search(context.Background(), models.SearchRequest{Page: 1})

	assert.ErrorIs(t, err, ErrSearchOnServer)
	assert.ErrorIs(t, err, adapter.ErrSecurityCheckFailed)
}

func TestClientSearchService_PermissionDenied(t *testing.T) {
	svc, srv := newTestClientSearch(t)

	srv.EXPECT().SearchNonce(gomock.Any()).Return("n", nil)
	srv.EXPECT().Search(gomock.Any(), "n", gomock.Any()).Return(models.SearchResult{}, adapter.ErrPermissionDenied)

	_, err := svc.Search(context.Background(), models.SearchRequest{Page: 1})

	assert.ErrorIs(t, err, adapter.ErrPermissionDenied)
}

func TestClientSearchService_NonceError(t *testing.T) {
	svc, srv := newTestClientSearch(t)
	srv.EXPECT().SearchNonce(gomock.Any()).Return("", adapter.ErrUnauthorized)

	_, err := svc.Search(context.Background(), models.SearchRequest{Page: 1})

	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientSearchService_FilterURL(t *testing.T) {
	svc, _ := newTestClientSearch(t)

	got, err := svc.FilterURL("http://localhost:8080/users?changeit=Filter&orderby=login", 7)

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/users?filter_action=Filter&orderby=login&user_tag=7", got)
}
