// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/crypto"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

// authService is the concrete implementation of AuthService.
// It verifies credentials against Argon2id hashes, issues JWT session tokens
// and resolves token owners into actors.
type authService struct {
	// userRepository is the data-access layer used to look up users.
	userRepository store.UserRepository

	// roleRepository resolves the capabilities of a user's role.
	roleRepository store.RoleRepository

	// hasher verifies submitted passwords against stored hashes.
	hasher crypto.PasswordHasher

	// sessions generates the session id carried in the "jti" claim.
	sessions *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	users store.UserRepository,
	roles store.RoleRepository,
	hasher crypto.PasswordHasher,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		userRepository: users,
		roleRepository: roles,
		hasher:         hasher,
		sessions:       utils.NewUUIDGenerator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - ErrWrongPassword if the account does not exist or the password does
//     not match. Both cases look the same to the caller.
//   - A wrapped storage error if the repository lookup fails.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByLogin(ctx, login)
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Str("login", login).Msg("unknown login")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := a.hasher.Verify(password, foundUser.AuthHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, ErrWrongPassword
	}
	if !ok {
		log.Warn().Int64("id", foundUser.UserID).Str("login", foundUser.Login).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user under a new session id.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.sessions.Generate(), a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// ResolveActor implements [AuthService]. A token whose owner no longer
// exists is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ResolveActor(ctx context.Context, token models.Token) (*models.Actor, error) {
	user, err := a.userRepository.GetUser(ctx, token.UserID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return nil, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("error loading token owner: %w", err)
	}

	caps, err := a.roleRepository.GetCapabilities(ctx, user.Role)
	if err != nil {
		return nil, fmt.Errorf("error loading capabilities: %w", err)
	}

	actor := &models.Actor{
		UserID:       user.UserID,
		Login:        user.Login,
		Role:         user.Role,
		SessionID:    token.SessionID,
		Capabilities: make(map[models.Capability]bool, len(caps)),
	}
	for _, c := range caps {
		actor.Capabilities[c] = true
	}

	return actor, nil
}
