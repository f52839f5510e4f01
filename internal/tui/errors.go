// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/app"
	"github.com/MKhiriev/go-user-tags/internal/service"
)

var (
	ErrNoClientServices = errors.New("client services are not provided")
	ErrNoListURL        = errors.New("user list URL is not provided")
)

const (
	permissionDeniedMessage = app.MsgPermissionDenied
	loginFailedMessage      = app.MsgLoginFailed
	serverUnavailable       = "No network or the server is unavailable"
)

// humanizeError turns client errors into the one-line messages shown in the
// status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrPermissionDenied), errors.Is(err, adapter.ErrForbidden):
		return permissionDeniedMessage
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, service.ErrInvalidDataProvided):
		return loginFailedMessage
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return serverUnavailable
	}

	return err.Error()
}
