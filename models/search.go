// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "math"

// SearchPageSize is the fixed number of terms returned per search page.
const SearchPageSize = 10

// MaxSearchPage is the last page whose row offset fits an int and so a
// signed SQL OFFSET. Later pages are always empty.
const MaxSearchPage = math.MaxInt / SearchPageSize

// SearchRequest is the request-scoped state of a type-ahead term search.
type SearchRequest struct {
	// Search is the partial name typed by the user. Empty lists every term.
	Search string `json:"search" validate:"max=200"`

	// Page is the 1-based result page.
	Page int `json:"page" validate:"gte=1"`
}

// SearchItem is a single search hit in the id/text shape type-ahead
// controls expect.
type SearchItem struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Pagination tells the caller whether another page can be requested.
type Pagination struct {
	More bool `json:"more"`
}

// SearchResult is one page of search hits.
type SearchResult struct {
	Results    []SearchItem `json:"results"`
	Pagination Pagination   `json:"pagination"`
}

// AjaxResponse is the envelope of every AJAX action response.
// Data holds a [SearchResult] on success or an [AjaxError] on failure.
type AjaxResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// AjaxError is the failure payload of an AJAX action.
type AjaxError struct {
	Message string `json:"message"`
}
