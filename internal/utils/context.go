// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and filter URL rewriting.
package utils

import (
	"context"

	"github.com/MKhiriev/go-user-tags/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ActorCtxKey is the key under which the authenticated [models.Actor] is
// stored in a request context.
var ActorCtxKey = contextKey("actor")

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext retrieves the authenticated actor from the context.
//
// Returns the actor and an ok flag:
//   - ok == true : a non-nil actor is present
//   - ok == false: value is missing, nil or has an unexpected type
func GetActorFromContext(ctx context.Context) (*models.Actor, bool) {
	actor, ok := ctx.Value(ActorCtxKey).(*models.Actor)
	if !ok || actor == nil {
		return nil, false
	}
	return actor, true
}
