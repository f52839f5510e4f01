// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ProfileControl is everything needed to render the tag multi-select on a
// user's profile screen.
type ProfileControl struct {
	// Taxonomy is the taxonomy the control edits.
	Taxonomy Taxonomy

	// Terms is the full, unpaginated list of terms.
	Terms []Term

	// Selected holds the ids currently assigned to the user.
	Selected map[int64]bool

	// Nonce is the forgery token the form must send back on submit.
	Nonce string
}

// TermSubmission is the tag field of a submitted profile form.
type TermSubmission struct {
	// Present reports whether the field was part of the submission at all.
	// An absent field clears the assignment.
	Present bool

	// Values holds the raw submitted values, one per selected option.
	Values []string

	// Nonce is the forgery token sent back with the form.
	Nonce string
}

// FilterPosition distinguishes the filter control rendered above the user
// list from the one rendered below it.
type FilterPosition string

const (
	FilterPositionTop    FilterPosition = "top"
	FilterPositionBottom FilterPosition = "bottom"
)

// FilterControl describes the single-select rendered in the user list
// toolbar.
type FilterControl struct {
	// ElementID is the position-dependent DOM id of the select.
	ElementID string

	// Name is the query parameter the select submits.
	Name string

	// Trigger is the name of the "apply" button next to the select.
	Trigger string

	// AllLabel is the label of the "no filter" option.
	AllLabel string

	// Options lists every term in display order.
	Options []FilterOption
}

// FilterOption is one term entry of a [FilterControl].
type FilterOption struct {
	ID       int64
	Label    string
	Selected bool
}

// Query parameters of the user list filter.
const (
	// FilterParam carries the selected term id.
	FilterParam = "user_tag"

	// FilterActionParam is the marker the user list expects on filtered
	// requests.
	FilterActionParam = "filter_action"

	// FilterActionValue is the value of FilterActionParam.
	FilterActionValue = "Filter"

	// FilterTriggerTop and FilterTriggerBottom name the apply buttons of the
	// two filter controls.
	FilterTriggerTop    = "changeit"
	FilterTriggerBottom = "changeit2"
)
