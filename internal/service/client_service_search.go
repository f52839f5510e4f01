// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-tags/internal/adapter"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
)

type clientSearchService struct {
	adapter adapter.ServerAdapter

	mu    sync.Mutex
	nonce string

	logger *logger.Logger
}

func NewClientSearchService(serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSearchService {
	log.Debug().Msg("creating client search service")
	return &clientSearchService{adapter: serverAdapter, logger: log}
}

func (s *clientSearchService) Search(ctx context.Context, req models.SearchRequest) (models.SearchResult, error) {
	req.Search = strings.TrimSpace(req.Search)
	if req.Page < 1 {
		req.Page = 1
	}

	nonce, err := s.currentNonce(ctx, false)
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrSearchOnServer, err)
	}

	result, err := s.adapter.Search(ctx, nonce, req)
	if errors.Is(err, adapter.ErrSecurityCheckFailed) {
		s.logger.Debug().Str("func", "*clientSearchService.Search").Msg("search nonce rejected, refreshing")

		if nonce, err = s.currentNonce(ctx, true); err != nil {
			return models.SearchResult{}, fmt.Errorf("%w: %w", ErrSearchOnServer, err)
		}
		result, err = s.adapter.Search(ctx, nonce, req)
	}
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("%w: %w", ErrSearchOnServer, err)
	}

	return result, nil
}

func (s *clientSearchService) FilterURL(listURL string, termID int64) (string, error) {
	return utils.RewriteFilterURL(listURL, termID)
}

func (s *clientSearchService) currentNonce(ctx context.Context, refresh bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.nonce != "" && !refresh {
		return s.nonce, nil
	}

	nonce, err := s.adapter.SearchNonce(ctx)
	if err != nil {
		return "", err
	}
	s.nonce = nonce
	return nonce, nil
}
