// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scaffold-api/internal/app"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header, validates it via
// [service.AuthService.ParseToken] and stores the parsed token in the request
// context under [utils.TokenCtxKey] before delegating to the next handler.
//
// Every rejection is a 401 with a "WWW-Authenticate: Bearer" header and the
// same body, whatever the reason.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(errors.Join(ErrInvalidAuthorizationHeader, err)).Str("func", "*Handler.auth").Send()
			writeUnauthorized(w, app.MsgNotAuthenticated)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Str("func", "*Handler.auth").Msg("token expired")
			default:
				log.Err(err).Str("func", "*Handler.auth").Msg("error occurred during parsing token")
			}
			writeUnauthorized(w, app.MsgNotAuthenticated)
			return
		}

		ctx = context.WithValue(ctx, utils.TokenCtxKey, token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
