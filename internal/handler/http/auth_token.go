// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scaffold-api/internal/app"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
)

const wwwAuthenticateBearer = "Bearer"

// issueToken exchanges a form-encoded username and password for a signed
// access token.
//
// Unknown usernames and wrong passwords produce the same 401 response, so a
// caller cannot tell them apart.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.issueToken").Msg("error parsing token form")
		writeError(w, http.StatusBadRequest, app.MsgMalformedForm)
		return
	}

	username, password := r.PostForm.Get("username"), r.PostForm.Get("password")
	if username == "" || password == "" {
		log.Err(ErrMissingFormField).Str("func", "*Handler.issueToken").Send()
		writeError(w, http.StatusBadRequest, app.MsgMissingCredentials)
		return
	}

	ctx := r.Context()
	principal, err := h.services.AuthService.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn().Str("func", "*Handler.issueToken").Msg("rejected login attempt")
			writeUnauthorized(w, app.MsgIncorrectCredentials)
			return
		}

		log.Err(err).Str("func", "*Handler.issueToken").Msg("credential verification failed")
		writeError(w, statusFromError(err), app.MsgInternalServerError)
		return
	}

	token, err := h.services.AuthService.IssueToken(ctx, principal.Name)
	if err != nil {
		log.Err(err).Str("func", "*Handler.issueToken").Msg("error issuing token")
		writeError(w, http.StatusInternalServerError, app.MsgInternalServerError)
		return
	}

	log.Info().Str("subject", principal.Name).Time("expires_at", token.ExpiresAtTime()).Msg("token issued")
	utils.WriteJSON(w, models.AccessTokenResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func writeUnauthorized(w http.ResponseWriter, detail string) {
	w.Header().Set("WWW-Authenticate", wwwAuthenticateBearer)
	writeError(w, http.StatusUnauthorized, detail)
}
