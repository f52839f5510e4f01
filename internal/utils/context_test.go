// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-tags/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestActorCtxKey(t *testing.T) {
	if ActorCtxKey.String() != "actor" {
		t.Errorf("expected 'actor', got '%s'", ActorCtxKey.String())
	}
}

func TestGetActorFromContext_Success(t *testing.T) {
	ctx := WithActor(context.Background(), &models.Actor{UserID: 42})

	actor, ok := GetActorFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if actor.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", actor.UserID)
	}
}

func TestGetActorFromContext_Missing(t *testing.T) {
	actor, ok := GetActorFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if actor != nil {
		t.Errorf("expected nil actor, got %+v", actor)
	}
}

func TestGetActorFromContext_NilActor(t *testing.T) {
	ctx := WithActor(context.Background(), nil)

	if _, ok := GetActorFromContext(ctx); ok {
		t.Fatal("expected ok=false for nil actor, got true")
	}
}

func TestGetActorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ActorCtxKey, "not-an-actor")

	if _, ok := GetActorFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetActorFromContext_DifferentKey(t *testing.T) {
	ctx := context.WithValue(context.Background(), contextKey("otherKey"), &models.Actor{UserID: 99})

	if _, ok := GetActorFromContext(ctx); ok {
		t.Fatal("expected ok=false for different key, got true")
	}
}
