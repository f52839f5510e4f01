// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles user account creation, lookup and listing against the "users"
// table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned UserID and CreatedAt.
//
// Error handling:
//   - unique violation on login → [ErrLoginAlreadyExists].
//   - foreign key violation on role → [ErrRoleNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	query, args, err := wrapBuild(r.db.builder.Insert(usersTable).
		Columns("login", "display_name", "email", "role", "auth_hash", "created_at").
		Values(user.Login, user.DisplayName, user.Email, user.Role, user.AuthHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql())
	if err != nil {
		return models.User{}, err
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&user.UserID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("login", user.Login).Msg("error creating user")

		switch r.db.classify(err) {
		case ClassUniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		case ClassForeignKeyViolation:
			return models.User{}, ErrRoleNotFound
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	user.Password = ""
	return user, nil
}

// FindUserByLogin retrieves the user whose login matches.
// An empty result yields [ErrNoUserWasFound].
func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByLogin", sq.Eq{"login": login})
}

// GetUser retrieves a user by id.
// An empty result yields [ErrNoUserWasFound].
func (r *userRepository) GetUser(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.GetUser", sq.Eq{"user_id": userID})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := wrapBuild(r.db.builder.Select(userColumns...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql())
	if err != nil {
		return models.User{}, err
	}

	var u models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&u.UserID, &u.Login, &u.DisplayName, &u.Email, &u.Role, &u.AuthHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return u, nil
}

// ListUsers returns one page of users ordered by login, together with the
// number of users matching query.Include.
func (r *userRepository) ListUsers(ctx context.Context, query models.UserListQuery) (models.UserList, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(r.db.builder, query)
	if err != nil {
		return models.UserList{}, err
	}

	var list models.UserList
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&list.Total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to count users")
		return models.UserList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	listQuery, listArgs, err := buildListUsersQuery(r.db.builder, query)
	if err != nil {
		return models.UserList{}, err
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to list users")
		return models.UserList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list.Users = make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.UserID, &u.Login, &u.DisplayName, &u.Email, &u.Role, &u.AuthHash, &u.CreatedAt); err != nil {
			return models.UserList{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list.Users = append(list.Users, u)
	}

	if err := rows.Err(); err != nil {
		return models.UserList{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return list, nil
}
