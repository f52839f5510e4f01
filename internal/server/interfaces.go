// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of a transport server.
type Server interface {
	// RunServer serves requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully.
	Shutdown()
}
