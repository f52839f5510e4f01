// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrForbidden is returned when the actor lacks the capability an
	// operation requires.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidNonce is returned when a forgery token does not verify.
	ErrInvalidNonce = errors.New("invalid nonce")

	// ErrTaxonomyNotRegistered is returned when an operation needs a
	// taxonomy that was never registered.
	ErrTaxonomyNotRegistered = errors.New("taxonomy is not registered")

	// ErrInvalidTermName is returned when a term name yields no slug.
	ErrInvalidTermName = errors.New("invalid term name")
)

// Client-side errors.
var (
	ErrLoginOnServer  = errors.New("error logging in on server")
	ErrSearchOnServer = errors.New("error searching terms on server")
)
