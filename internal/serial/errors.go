// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package serial

import "errors"

var (
	// ErrMalformed is returned when the input is not a well-formed
	// serialized array.
	ErrMalformed = errors.New("malformed serialized value")
	// ErrEncode is returned when an id list cannot be serialized.
	ErrEncode = errors.New("cannot serialize ids")
)
