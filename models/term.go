// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Term is a single tag value belonging to a taxonomy.
//
// Terms are unique by TermID. Name uniqueness is not enforced: two terms of
// the same taxonomy may share a label.
type Term struct {
	// TermID is the server-assigned identifier of the term.
	TermID int64 `json:"id"`

	// Taxonomy is the name of the classification scheme the term belongs to
	// (e.g. "user_tag").
	Taxonomy string `json:"taxonomy"`

	// Name is the human-readable label shown in selects and search results.
	Name string `json:"name" validate:"required,max=200"`

	// Slug is a URL-safe form of Name derived at creation time.
	Slug string `json:"slug"`

	// CreatedAt is the moment the term was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TermQuery describes a filtered, paginated window over the terms of one
// taxonomy.
type TermQuery struct {
	// Taxonomy restricts the query to a single taxonomy. Required.
	Taxonomy string

	// Search is an optional case-insensitive substring matched against term
	// names. Empty means "no name filter".
	Search string

	// IDs optionally restricts the result to the given term identifiers.
	// A nil slice means "no id filter"; an empty non-nil slice matches nothing.
	IDs []int64

	// Limit is the maximum number of rows returned. Zero means unlimited.
	Limit uint64

	// Offset is the number of matching rows skipped before the window starts.
	Offset uint64
}

// TermPage is one page of the term management listing.
type TermPage struct {
	Terms []Term `json:"terms"`
	Total int    `json:"total"`
	Page  int    `json:"page"`
	More  bool   `json:"more"`
}
