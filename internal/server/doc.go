// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP and gRPC servers of the user tags service and
// stops them gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
