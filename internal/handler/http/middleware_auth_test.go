// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	expiresAt := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	validToken := models.Token{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "demo",
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		SignedString: "valid",
	}

	tests := []struct {
		name       string
		header     string
		setup      func(m *serviceMocks)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "valid token",
			header: "Bearer valid",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "valid").Return(validToken, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"user":"demo","expires_at":"2026-10-18T12:00:00Z"}`,
		},
		{
			name:   "lower-case scheme",
			header: "bearer valid",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "valid").Return(validToken, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"user":"demo","expires_at":"2026-10-18T12:00:00Z"}`,
		},
		{
			name:       "no header",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:       "basic scheme",
			header:     "Basic ZGVtbzpzZWNyZXQ=",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:       "scheme without token",
			header:     "Bearer ",
			setup:      func(m *serviceMocks) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "expired").
					Return(models.Token{}, fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, service.ErrTokenIsExpired))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
		{
			name:   "forged token",
			header: "Bearer forged",
			setup: func(m *serviceMocks) {
				m.auth.EXPECT().ParseToken(gomock.Any(), "forged").
					Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"detail":"Not authenticated"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mocks := newTestRouter(t)
			tt.setup(mocks)

			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rr := doRequest(t, router, http.MethodGet, "/protected/me", nil, headers)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestAuthMiddleware_PublicRoutesIgnoreToken(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := doRequest(t, router, http.MethodGet, "/health", nil, map[string]string{"Authorization": "Bearer garbage"})

	assert.Equal(t, http.StatusOK, rr.Code)
}
