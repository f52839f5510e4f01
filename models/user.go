// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that can be tagged and, depending on its role,
// manage tags of other accounts.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Login is the unique login name.
	Login string `json:"login" validate:"required,max=60"`

	// DisplayName is shown in the user list.
	DisplayName string `json:"display_name"`

	// Email is the contact address of the user. Optional.
	Email string `json:"email" validate:"omitempty,email"`

	// Role names the role whose capabilities the user holds.
	Role string `json:"role"`

	// Password carries the plain-text password on login and creation only.
	// It is never persisted or serialized back.
	Password string `json:"password,omitempty"`

	// AuthHash is the encoded argon2id hash of the password.
	AuthHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserListQuery describes one page of the admin user listing.
type UserListQuery struct {
	// Include restricts the listing to the given user ids. A nil slice means
	// "no restriction". Filters narrow the listing by replacing it.
	Include []int64

	// Page is the 1-based page number.
	Page int

	// PerPage is the page size.
	PerPage int
}

// UserList is one page of users plus the total number of matching users.
type UserList struct {
	Users []User
	Total int
}

// UserMeta is a single per-user metadata row.
type UserMeta struct {
	UserID int64
	Key    string
	Value  string
}
