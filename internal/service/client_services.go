// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
)

type ClientServices struct {
	AuthService   ClientAuthService
	SearchService ClientSearchService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:   NewClientAuthService(serverAdapter, log),
		SearchService: NewClientSearchService(serverAdapter, log),
	}
}
