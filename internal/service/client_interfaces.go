// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-user-tags/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for authenticating
// against the remote server.
type ClientAuthService interface {
	// Login authenticates with login and password. On success the server
	// adapter keeps the session token for every later call.
	Login(ctx context.Context, login, password string) (models.User, error)
}

// ClientSearchService defines the client-side contract of the type-ahead
// term search.
type ClientSearchService interface {
	// Search returns one page of terms matching req. The forgery token is
	// fetched on first use and refreshed once when the server rejects it.
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error)

	// FilterURL rewrites listURL so that it opens the user list filtered by
	// termID.
	FilterURL(listURL string, termID int64) (string, error)
}
