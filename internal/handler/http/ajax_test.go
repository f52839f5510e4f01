// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

func ajaxRequest(method string, params url.Values) *http.Request {
	if method == http.MethodPost {
		return postForm("/ajax", params)
	}
	return httptest.NewRequest(http.MethodGet, "/ajax?"+params.Encode(), nil)
}

func searchParams(nonce, search, page string) url.Values {
	return url.Values{
		"action": {ActionSearchTerms},
		"nonce":  {nonce},
		"search": {search},
		"page":   {page},
	}
}

func TestAjax_UnknownAction(t *testing.T) {
	for _, action := range []string{"", "aut_unknown", "heartbeat"} {
		t.Run(fmt.Sprintf("action=%q", action), func(t *testing.T) {
			h, m := newTestHandler(t)
			m.expectSession(testAdmin())

			rec := serve(h, ajaxRequest(http.MethodGet, url.Values{"action": {action}}))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "0", rec.Body.String())
		})
	}
}

func TestAjax_SearchSuccess(t *testing.T) {
	for _, method := range []string{http.MethodGet, http.MethodPost} {
		t.Run(method, func(t *testing.T) {
			h, m := newTestHandler(t)
			actor := testAdmin()
			m.expectSession(actor)
			m.nonces.EXPECT().Verify(actor, service.NonceActionSearch, "n0nce").Return(true)
			m.authorizer.EXPECT().Can(actor, models.CapEditUsers).Return(true)
			m.search.EXPECT().
				Search(gomock.Any(), models.SearchRequest{Search: "vi", Page: 2}).
				Return(models.SearchResult{
					Results:    []models.SearchItem{{ID: 7, Text: "VIP"}},
					Pagination: models.Pagination{More: true},
				}, nil)

			rec := serve(h, ajaxRequest(method, searchParams("n0nce", "vi", "2")))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t,
				`{"success":true,"data":{"results":[{"id":7,"text":"VIP"}],"pagination":{"more":true}}}`,
				rec.Body.String())
		})
	}
}

func TestAjax_SearchPageIsPassedRaw(t *testing.T) {
	tests := []struct {
		page string
		want int
	}{
		{page: "", want: 0},
		{page: "abc", want: 0},
		{page: "-3", want: -3},
		{page: " 4 ", want: 4},
		{page: strconv.Itoa(math.MaxInt), want: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("page=%q", tt.page), func(t *testing.T) {
			h, m := newTestHandler(t)
			actor := testAdmin()
			m.expectSession(actor)
			m.nonces.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
			m.authorizer.EXPECT().Can(gomock.Any(), gomock.Any()).Return(true)
			m.search.EXPECT().
				Search(gomock.Any(), models.SearchRequest{Search: "", Page: tt.want}).
				Return(models.SearchResult{Results: []models.SearchItem{}}, nil)

			rec := serve(h, ajaxRequest(http.MethodGet, searchParams("n", "", tt.page)))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func decodeAjax(t *testing.T, rec *httptest.ResponseRecorder) (bool, string) {
	t.Helper()
	var resp struct {
		Success bool             `json:"success"`
		Data    models.AjaxError `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Success, resp.Data.Message
}

func TestAjax_SearchBadNonce(t *testing.T) {
	h, m := newTestHandler(t)
	actor := testAdmin()
	m.expectSession(actor)
	m.nonces.EXPECT().Verify(actor, service.NonceActionSearch, "stale").Return(false)

	rec := serve(h, ajaxRequest(http.MethodGet, searchParams("stale", "vi", "1")))

	require.Equal(t, http.StatusOK, rec.Code)
	success, message := decodeAjax(t, rec)
	assert.False(t, success)
	assert.Equal(t, "Security check failed", message)
}

func TestAjax_SearchWithoutCapability(t *testing.T) {
	h, m := newTestHandler(t)
	actor := &models.Actor{UserID: 5, Role: "subscriber", SessionID: "s-5"}
	m.expectSession(actor)
	m.nonces.EXPECT().Verify(actor, service.NonceActionSearch, "n").Return(true)
	m.authorizer.EXPECT().Can(actor, models.CapEditUsers).Return(false)

	rec := serve(h, ajaxRequest(http.MethodGet, searchParams("n", "vi", "1")))

	require.Equal(t, http.StatusOK, rec.Code)
	success, message := decodeAjax(t, rec)
	assert.False(t, success)
	assert.Equal(t, "You do not have permission to perform this action", message)
}

func TestAjax_SearchInvalidRequest(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectSession(testAdmin())
	m.nonces.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	m.authorizer.EXPECT().Can(gomock.Any(), gomock.Any()).Return(true)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(models.SearchResult{}, fmt.Errorf("%w: too long", service.ErrInvalidDataProvided))

	rec := serve(h, ajaxRequest(http.MethodGet, searchParams("n", "x", "1")))

	require.Equal(t, http.StatusOK, rec.Code)
	success, message := decodeAjax(t, rec)
	assert.False(t, success)
	assert.Equal(t, searchFailedMessage, message)
}

func TestAjax_SearchStorageFailure(t *testing.T) {
	h, m := newTestHandler(t)
	m.expectSession(testAdmin())
	m.nonces.EXPECT().Verify(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
	m.authorizer.EXPECT().Can(gomock.Any(), gomock.Any()).Return(true)
	m.search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(models.SearchResult{}, store.ErrExecutingQuery)

	rec := serve(h, ajaxRequest(http.MethodGet, searchParams("n", "x", "1")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
