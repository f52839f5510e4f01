// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "github.com/MKhiriev/go-user-tags/models"

type authorizer struct{}

// NewAuthorizer constructs an [Authorizer] over the capabilities resolved
// into each actor.
func NewAuthorizer() Authorizer {
	return &authorizer{}
}

// Can implements [Authorizer]. Nobody holds the empty capability.
func (a *authorizer) Can(actor *models.Actor, capability models.Capability) bool {
	if capability == "" {
		return false
	}
	return actor.Has(capability)
}

// CanEditUser implements [Authorizer].
func (a *authorizer) CanEditUser(actor *models.Actor, userID int64) bool {
	if actor == nil || userID <= 0 {
		return false
	}
	return actor.UserID == userID || actor.Has(models.CapEditUsers)
}
