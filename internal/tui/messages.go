// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-user-tags/models"
)

// NavigateTo switches the active page of [RootModel]. Payload, when set, is
// delivered to the new page as the next message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult is produced by the login command.
type LoginResult struct {
	User models.User
	Err  error
}

// searchTickMsg fires when the debounce delay of keystroke seq has elapsed.
type searchTickMsg struct {
	seq int
}

// searchResultMsg carries one page of results for keystroke seq.
type searchResultMsg struct {
	seq    int
	page   int
	append bool
	result models.SearchResult
	err    error
}

type copiedMsg struct {
	url string
	err error
}
