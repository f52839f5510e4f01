// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
)

// Storages aggregates every repository built over one database connection.
type Storages struct {
	TermStore      TermStore
	MetaRepository MetaRepository
	UserRepository UserRepository
	RoleRepository RoleRepository

	db *DB
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		TermStore:      NewTermStore(db, log),
		MetaRepository: NewMetaRepository(db, log),
		UserRepository: NewUserRepository(db, log),
		RoleRepository: NewRoleRepository(db, log),
		db:             db,
	}
}

// OpenStorages connects to the configured database, applies migrations and
// wires the repositories.
func OpenStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectDB(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return NewStorages(db, log), nil
}

// Ping checks that the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
