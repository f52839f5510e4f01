// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrMalformedHash is returned when a stored hash is not a valid
	// Argon2id PHC string.
	ErrMalformedHash = errors.New("malformed password hash")

	// ErrIncompatibleVersion is returned for hashes made by a different
	// Argon2 version.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
)
