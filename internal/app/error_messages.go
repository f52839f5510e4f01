// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the server
// handlers, the client adapter and the terminal UI.
//
// The AJAX failure messages are part of the wire contract: the server writes
// them into failure payloads and the client adapter matches on them.
package app

const (
	// MsgSecurityCheckFailed is the failure payload message of a search
	// request whose forgery token does not verify.
	MsgSecurityCheckFailed = "Security check failed"

	// MsgPermissionDenied is the failure payload message of a search request
	// by an actor without edit_users.
	MsgPermissionDenied = "You do not have permission to perform this action"

	// MsgSearchFailed is the failure payload message of a search request
	// with invalid parameters.
	MsgSearchFailed = "Search failed"

	// MsgLoginFailed is shown when the login/password pair does not match.
	MsgLoginFailed = "Unknown username or incorrect password."

	// MsgSearching is shown while a type-ahead page is loading.
	MsgSearching = "Searching…"

	// MsgNoResults is shown when a type-ahead search finds nothing.
	MsgNoResults = "No results"
)
