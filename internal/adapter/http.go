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
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// contentHashHeader must match the header verified by the server.
const contentHashHeader = "X-Content-SHA256"

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP implementation of [ServerAdapter]
// for the server at address. A missing scheme defaults to http://.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// TokenExpiresAt implements [ServerAdapter]. The client does not hold the
// signing key, so the claims are read unverified and used for display only.
func (h *httpServerAdapter) TokenExpiresAt() (time.Time, bool) {
	token := h.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		h.logger.Debug().Err(err).Str("func", "*httpServerAdapter.TokenExpiresAt").Msg("stored token is not a JWT")
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}

// Login implements [ServerAdapter] with a form-encoded POST /auth/token.
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.AccessTokenResponse, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/auth/token")
	if err != nil {
		return models.AccessTokenResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccessTokenResponse{}, err
	}
	if token.AccessToken == "" {
		return models.AccessTokenResponse{}, fmt.Errorf("login: %w", ErrNoToken)
	}

	h.SetToken(token.AccessToken)
	return token, nil
}

func (h *httpServerAdapter) Me(ctx context.Context) (models.MeResponse, error) {
	if h.Token() == "" {
		return models.MeResponse{}, ErrNoToken
	}

	var me models.MeResponse
	resp, err := h.authedRequest(ctx).SetResult(&me).Get("/protected/me")
	if err != nil {
		return models.MeResponse{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MeResponse{}, err
	}

	return me, nil
}

func (h *httpServerAdapter) ListItems(ctx context.Context, limit int) ([]models.Item, error) {
	req := h.authedRequest(ctx)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(limit))
	}

	items := make([]models.Item, 0)
	resp, err := req.SetResult(&items).Get("/items/")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

// CreateItem implements [ServerAdapter]. The body is marshalled here so the
// digest covers the exact bytes on the wire.
func (h *httpServerAdapter) CreateItem(ctx context.Context, request models.CreateItemRequest) (models.CreateItemResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return models.CreateItemResponse{}, fmt.Errorf("encode item: %w", err)
	}

	var created models.CreateItemResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(contentHashHeader, utils.HashString(string(payload))).
		SetBody(payload).
		SetResult(&created).
		Post("/items/")
	if err != nil {
		return models.CreateItemResponse{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateItemResponse{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, id string) (models.Item, error) {
	var item models.Item
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&item).
		Get("/items/{id}")
	if err != nil {
		return models.Item{}, fmt.Errorf("get item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&health).Get("/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthScheme("Bearer").SetAuthToken(token)
	}
	return req
}
