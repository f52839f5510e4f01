// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"html/template"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/ratelimit"
	"github.com/MKhiriev/go-user-tags/internal/service"
)

// Handler serves the JSON API, the AJAX dispatcher and the admin screens.
type Handler struct {
	services *service.Services
	limiter  *ratelimit.KeyedRateLimiter
	pages    *template.Template
	version  string
	cfg      config.Server

	logger *logger.Logger
}

// NewHandler builds a Handler over services. The AJAX rate limiter is sized
// from cfg.Server; call Close to release it.
func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		limiter:  ratelimit.New(cfg.Server.RateLimit, cfg.Server.RateBurst),
		pages:    parsePages(),
		version:  cfg.App.Version,
		cfg:      cfg.Server,
		logger:   logger,
	}
}

// Close stops the background work of the handler.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}
