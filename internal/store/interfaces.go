// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-user-tags/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// TermStore persists taxonomy terms and answers name searches over them.
type TermStore interface {
	CreateTerm(ctx context.Context, term models.Term) (models.Term, error)
	UpdateTerm(ctx context.Context, term models.Term) (models.Term, error)
	DeleteTerm(ctx context.Context, taxonomy string, termID int64) error
	GetTerm(ctx context.Context, taxonomy string, termID int64) (models.Term, error)
	ListTerms(ctx context.Context, query models.TermQuery) ([]models.Term, error)
	CountTerms(ctx context.Context, query models.TermQuery) (int, error)
}

// MetaRepository stores per-user metadata rows keyed by (user_id, meta_key).
type MetaRepository interface {
	GetMeta(ctx context.Context, userID int64, key string) (string, bool, error)
	SetMeta(ctx context.Context, userID int64, key, value string) error
	DeleteMeta(ctx context.Context, userID int64, key string) error
	// FindMetaByPatterns returns the rows of key whose value contains any of
	// the given literal substrings.
	FindMetaByPatterns(ctx context.Context, key string, patterns []string) ([]models.UserMeta, error)
}

// UserRepository stores user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, query models.UserListQuery) (models.UserList, error)
}

// RoleRepository stores roles and their capability grants.
type RoleRepository interface {
	RoleExists(ctx context.Context, role string) (bool, error)
	GrantCapabilities(ctx context.Context, role string, caps []models.Capability) error
	GetCapabilities(ctx context.Context, role string) ([]models.Capability, error)
}
