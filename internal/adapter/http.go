// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-user-tags/internal/config"
	"github.com/MKhiriev/go-user-tags/internal/logger"
	"github.com/MKhiriev/go-user-tags/internal/utils"
	"github.com/MKhiriev/go-user-tags/models"
	"github.com/go-resty/resty/v2"
)

// SearchAction is the AJAX action name of the term search.
const SearchAction = "aut_search_terms"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type nonceResponse struct {
	Nonce string `json:"nonce"`
}

type ajaxEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	logger.Debug().Str("base_url", baseURL).Msg("creating http server adapter")

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. The token is whitespace-trimmed.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// /api/auth/login and picks the bearer token from the Authorization response
// header.
func (h *httpServerAdapter) Login(ctx context.Context, login, password string) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(loginRequest{Login: login, Password: password}).
		SetResult(&user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// SearchNonce implements [ServerAdapter] via GET /api/nonces/search.
func (h *httpServerAdapter) SearchNonce(ctx context.Context) (string, error) {
	var nr nonceResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&nr).
		Get("/api/nonces/search")
	if err != nil {
		return "", fmt.Errorf("search nonce request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if nr.Nonce == "" {
		return "", fmt.Errorf("search nonce response: empty nonce")
	}

	return nr.Nonce, nil
}

// Search implements [ServerAdapter]. It calls the AJAX dispatcher and unwraps
// the success envelope.
func (h *httpServerAdapter) Search(ctx context.Context, nonce string, req models.SearchRequest) (models.SearchResult, error) {
	log := h.logger.GetChildLogger()
	log.Debug().Str("func", "*httpServerAdapter.Search").Str("search", req.Search).Int("page", req.Page).Msg("searching terms")

	resp, err := h.authedRequest(ctx).
		SetQueryParams(map[string]string{
			"action": SearchAction,
			"nonce":  nonce,
			"search": req.Search,
			"page":   strconv.Itoa(req.Page),
		}).
		Get("/ajax")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	var envelope ajaxEnvelope
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}

	if !envelope.Success {
		var failure models.AjaxError
		if err = json.Unmarshal(envelope.Data, &failure); err != nil {
			return models.SearchResult{}, fmt.Errorf("decode search failure: %w", err)
		}
		return models.SearchResult{}, mapAjaxFailure(failure.Message)
	}

	var result models.SearchResult
	if err = json.Unmarshal(envelope.Data, &result); err != nil {
		return models.SearchResult{}, fmt.Errorf("decode search result: %w", err)
	}
	if result.Results == nil {
		result.Results = []models.SearchItem{}
	}

	return result, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
