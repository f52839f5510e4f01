// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-user-tags/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Registrar declares the user tag taxonomy and grants its capabilities.
type Registrar interface {
	// Register declares the taxonomy and grants its four capabilities to the
	// administrator role. Calling it again changes nothing.
	Register(ctx context.Context) (models.Taxonomy, error)

	// Taxonomy returns a registered taxonomy by name.
	Taxonomy(name string) (models.Taxonomy, bool)
}

// TagRepository reads and writes the set of terms assigned to a user.
type TagRepository interface {
	// GetAssignedTerms resolves the stored ids to terms, dropping ids whose
	// term no longer exists. Missing or malformed data yields no terms.
	GetAssignedTerms(ctx context.Context, userID int64) ([]models.Term, error)

	// GetAssignedTermIDs returns the stored ids without resolving them.
	GetAssignedTermIDs(ctx context.Context, userID int64) ([]int64, error)

	// SetAssignedTerms replaces the whole assignment. An empty set removes
	// the stored record.
	SetAssignedTerms(ctx context.Context, userID int64, termIDs []int64) error

	// FindUsersByTerm returns the ids of users whose assignment contains
	// termID. No match is an empty slice, not an error.
	FindUsersByTerm(ctx context.Context, termID int64) ([]int64, error)
}

// ProfileEditor backs the tag field of the user profile screen.
type ProfileEditor interface {
	// RenderAssignmentControl returns the data of the multi-select. ok is
	// false when the actor may not assign tags.
	RenderAssignmentControl(ctx context.Context, actor *models.Actor, userID int64) (control models.ProfileControl, ok bool, err error)

	// OnSubmit stores the submitted assignment of userID.
	OnSubmit(ctx context.Context, actor *models.Actor, userID int64, submission models.TermSubmission) error
}

// ListFilter narrows the user list to the users of one term.
type ListFilter interface {
	// FilterControl returns the select rendered above or below the user
	// list. ok is false when no terms exist.
	FilterControl(ctx context.Context, position models.FilterPosition, selected int64) (control models.FilterControl, ok bool, err error)

	// ApplyFilter constrains query according to the filter parameter in
	// params.
	ApplyFilter(ctx context.Context, query *models.UserListQuery, params url.Values) error

	// NormalizeFilterRequest returns the canonical parameters of a filter
	// request submitted through one of the apply buttons. ok is false when
	// no redirect is needed.
	NormalizeFilterRequest(params url.Values) (normalized url.Values, ok bool)
}

// SearchService answers type-ahead term searches.
type SearchService interface {
	Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error)
}

// TermService manages the terms of the user tag taxonomy on behalf of an
// actor.
type TermService interface {
	CreateTerm(ctx context.Context, actor *models.Actor, name string) (models.Term, error)
	UpdateTerm(ctx context.Context, actor *models.Actor, termID int64, name string) (models.Term, error)
	DeleteTerm(ctx context.Context, actor *models.Actor, termID int64) error
	GetTerm(ctx context.Context, actor *models.Actor, termID int64) (models.Term, error)
	ListTerms(ctx context.Context, actor *models.Actor, req models.SearchRequest) (models.TermPage, error)
}

// AuthService authenticates users and turns session tokens into actors.
type AuthService interface {
	Login(ctx context.Context, login, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// ResolveActor loads the token owner and the capabilities of their role.
	ResolveActor(ctx context.Context, token models.Token) (*models.Actor, error)
}

// UserService manages user accounts.
type UserService interface {
	// CreateUser hashes user.Password and stores the account.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	ListUsers(ctx context.Context, query models.UserListQuery) (models.UserList, error)
}

// Authorizer answers capability questions about an actor.
type Authorizer interface {
	Can(actor *models.Actor, capability models.Capability) bool

	// CanEditUser reports whether actor may edit the account userID: their
	// own account, or any account with edit_users.
	CanEditUser(actor *models.Actor, userID int64) bool
}

// NonceService issues and checks forgery tokens bound to an actor's session
// and an action name.
type NonceService interface {
	Create(actor *models.Actor, action string) string
	Verify(actor *models.Actor, action, token string) bool
}
