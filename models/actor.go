// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Capability is the name of a permission that can be granted to a role.
type Capability string

// Host capabilities checked outside the taxonomy's own capability set.
const (
	// CapEditUsers allows editing any user account and using the term
	// search endpoint.
	CapEditUsers Capability = "edit_users"

	// CapListUsers allows viewing the user list screen.
	CapListUsers Capability = "list_users"
)

// RoleAdministrator is the role that receives the taxonomy capabilities on
// registration.
const RoleAdministrator = "administrator"

// Actor is the authenticated user performing the current request together
// with the capabilities resolved from their role.
type Actor struct {
	// UserID identifies the acting user.
	UserID int64

	// Login is the acting user's login name.
	Login string

	// Role is the role the acting user holds.
	Role string

	// SessionID identifies the login session; forgery tokens are bound to it.
	SessionID string

	// Capabilities is the set of capabilities granted to Role.
	Capabilities map[Capability]bool
}

// Has reports whether the actor holds capability c. A nil actor holds
// nothing.
func (a *Actor) Has(c Capability) bool {
	if a == nil {
		return false
	}
	return a.Capabilities[c]
}
