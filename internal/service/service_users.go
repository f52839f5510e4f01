// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/crypto"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/internal/validators"
	"github.com/MKhiriev/go-user-tags/models"
)

// UsersPerPage is the page size of the user list screen.
const UsersPerPage = 20

type userService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a [UserService].
func NewUserService(users store.UserRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		userRepository: users,
		hasher:         hasher,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser implements [UserService].
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the login, email or password is unusable.
//   - A wrapped storage error if the repository call fails (e.g. login already
//     taken, see store.ErrLoginAlreadyExists).
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if user.Password == "" {
		return models.User{}, fmt.Errorf("%w: password is required", ErrInvalidDataProvided)
	}
	if user.Role == "" {
		user.Role = "subscriber"
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.AuthHash = hash
	user.Password = ""

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetUser implements [UserService].
func (s *userService) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUser(ctx, userID)
}

// ListUsers implements [UserService]. Missing paging falls back to the
// first page of [UsersPerPage] users.
func (s *userService) ListUsers(ctx context.Context, query models.UserListQuery) (models.UserList, error) {
	query.Page = max(query.Page, 1)
	if query.PerPage <= 0 {
		query.PerPage = UsersPerPage
	}

	return s.userRepository.ListUsers(ctx, query)
}
