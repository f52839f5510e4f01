// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

type roleRepository struct {
	*DB
	logger *logger.Logger
}

// NewRoleRepository constructs a [RoleRepository] backed by db.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *roleRepository) RoleExists(ctx context.Context, role string) (bool, error) {
	query, args, err := wrapBuild(r.builder.Select("COUNT(*)").
		From(rolesTable).
		Where("name = ?", role).
		ToSql())
	if err != nil {
		return false, err
	}

	var n int
	if err := r.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roleRepository.RoleExists").Str("role", role).Msg("failed to look up role")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n > 0, nil
}

// GrantCapabilities adds caps to role. Grants already present are kept as
// they are.
func (r *roleRepository) GrantCapabilities(ctx context.Context, role string, caps []models.Capability) error {
	if len(caps) == 0 {
		return nil
	}

	query, args, err := buildGrantQuery(r.builder, role, caps)
	if err != nil {
		return err
	}

	if _, err := r.ExecContext(ctx, query, args...); err != nil {
		if r.classify(err) == ClassForeignKeyViolation {
			return ErrRoleNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*roleRepository.GrantCapabilities").Str("role", role).Msg("failed to grant capabilities")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *roleRepository) GetCapabilities(ctx context.Context, role string) ([]models.Capability, error) {
	query, args, err := wrapBuild(r.builder.Select("capability").
		From(roleCapabilitesTable).
		Where("role = ?", role).
		OrderBy("capability ASC").
		ToSql())
	if err != nil {
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*roleRepository.GetCapabilities").Str("role", role).Msg("failed to read capabilities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	caps := make([]models.Capability, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		caps = append(caps, models.Capability(c))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return caps, nil
}
