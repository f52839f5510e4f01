// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/mock"
	"github.com/MKhiriev/go-user-tags/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClientAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(srv, logger.Nop())

	srv.EXPECT().Login(gomock.Any(), "admin", "secret").Return(models.User{UserID: 1, Login: "admin"}, nil)

	user, err := svc.Login(context.Background(), " admin ", "secret")

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestClientAuthService_Login_EmptyInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewClientAuthService(mock.NewMockServerAdapter(ctrl), logger.Nop())

	_, err := svc.Login(context.Background(), "  ", "secret")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), "admin", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Login_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := mock.NewMockServerAdapter(ctrl)
	svc := NewClientAuthService(srv, logger.Nop())

	srv.EXPECT().Login(gomock.Any(), "admin", "nope").Return(models.User{}, adapter.ErrUnauthorized)

	_, err := svc.Login(context.Background(), "admin", "nope")

	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
