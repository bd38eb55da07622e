// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/config"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/mock"
	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type serviceMocks struct {
	auth  *mock.MockAuthService
	items *mock.MockItemService
	info  *mock.MockAppInfoService
}

// newTestRouter returns the full router backed by gomock services.
func newTestRouter(t *testing.T) (http.Handler, *serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := &serviceMocks{
		auth:  mock.NewMockAuthService(ctrl),
		items: mock.NewMockItemService(ctrl),
		info:  mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:    mocks.auth,
		ItemService:    mocks.items,
		AppInfoService: mocks.info,
	}

	h := NewHandler(services, config.Server{RequestTimeout: 5 * time.Second}, logger.Nop())
	return h.Init(), mocks
}

func doRequest(t *testing.T, router http.Handler, method, target string, body io.Reader, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, body)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.NewDecoder(strings.NewReader(rr.Body.String())).Decode(&v), "body: %s", rr.Body.String())
	return v
}
