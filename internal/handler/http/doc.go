// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the user tags server.
//
// It serves three surfaces over one chi router:
//   - the JSON API used by the terminal client and scripts (/api/...),
//   - the AJAX dispatcher the type-ahead widget talks to (/ajax),
//   - the server-rendered admin screens (/login, /users, /users/{id}).
//
// Tracing, access logging, compression, authentication and rate limiting are
// handled by middleware in this package before requests reach the service
// layer.
package http
