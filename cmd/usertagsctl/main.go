// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command usertagsctl administers a user tags database: it applies
// migrations, registers the taxonomy and manages users, terms and
// assignments without going through the web server.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
