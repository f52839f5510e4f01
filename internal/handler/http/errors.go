// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-user-tags/internal/app"
)

// Sentinel errors of the authentication middleware. Callers can match against
// them with [errors.Is].
var (
	// ErrNoCredentials is returned when a request carries neither an
	// "Authorization" header nor a session cookie.
	ErrNoCredentials = errors.New("no credentials provided")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidPathID is returned when a path parameter is not a positive
	// integer.
	ErrInvalidPathID = errors.New("invalid id in path")
)

// Messages of the AJAX failure payloads.
const (
	securityCheckFailedMessage = app.MsgSecurityCheckFailed
	permissionDeniedMessage    = app.MsgPermissionDenied
	searchFailedMessage        = app.MsgSearchFailed
)
