// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/service"
	"github.com/MKhiriev/go-user-tags/internal/store"
	"github.com/MKhiriev/go-user-tags/models"
)

// options are the persistent flags of the root command.
type options struct {
	dsn     string
	verbose bool
}

// env is the opened database and the services built over it.
type env struct {
	storages *store.Storages
	services *service.Services
	logger   *logger.Logger
}

func newLogger(opts *options, w io.Writer) *logger.Logger {
	log := logger.NewWriterLogger("usertagsctl", w)
	if !opts.verbose {
		log.Logger = log.Level(zerolog.WarnLevel)
	}
	return log
}

// loadConfig reads the environment configuration. --dsn wins over
// STORAGE_DB_DSN.
func loadConfig(opts *options) (*config.StructuredConfig, error) {
	cfg, err := config.GetEnvConfig()
	if cfg == nil {
		return nil, err
	}
	if opts.dsn != "" {
		cfg.Storage.DB.DSN = opts.dsn
		return cfg, nil
	}
	if errors.Is(err, config.ErrInvalidStorageConfigs) {
		return nil, fmt.Errorf("%w: set STORAGE_DB_DSN or --dsn", err)
	}
	return cfg, err
}

// openEnv connects, migrates and wires the services.
func openEnv(ctx context.Context, opts *options, log *logger.Logger) (*env, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	storages, err := store.OpenStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	return &env{
		storages: storages,
		services: service.NewServices(storages, *cfg, log),
		logger:   log,
	}, nil
}

func (e *env) Close() error {
	return e.storages.Close()
}

// systemActor holds every capability the commands need.
func systemActor() *models.Actor {
	caps := map[models.Capability]bool{
		models.CapEditUsers: true,
		models.CapListUsers: true,
	}
	for _, c := range service.UserTagTaxonomy().Capabilities.All() {
		caps[c] = true
	}

	return &models.Actor{
		Login:        "usertagsctl",
		Role:         models.RoleAdministrator,
		Capabilities: caps,
	}
}
