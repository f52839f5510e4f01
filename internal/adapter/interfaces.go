// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-user-tags server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// from AJAX failure payloads so that callers can use [errors.Is] for
// transport-agnostic error handling (e.g. [ErrSecurityCheckFailed] when the
// forgery token has expired).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-tags/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-user-tags server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Login authenticates with login and password. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record.
	Login(ctx context.Context, login, password string) (models.User, error)

	// SearchNonce fetches a forgery token for the term search action. The
	// token is bound to the current session.
	SearchNonce(ctx context.Context) (string, error)

	// Search requests one page of terms matching req. A failure payload is
	// reported as [ErrSecurityCheckFailed] or [ErrPermissionDenied].
	Search(ctx context.Context, nonce string, req models.SearchRequest) (models.SearchResult, error)
}
