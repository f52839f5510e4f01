// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientAuthService {
	log.Debug().Msg("creating client auth service")
	return &clientAuthService{adapter: serverAdapter, logger: log}
}

func (a *clientAuthService) Login(ctx context.Context, login, password string) (models.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.adapter.Login(ctx, login, password)
	if err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", login).Msg("login failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrLoginOnServer, err)
	}

	return user, nil
}
