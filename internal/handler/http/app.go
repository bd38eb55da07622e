// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-scaffold-api/internal/app"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
)

func (h *Handler) hello(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{Message: app.MsgHello}, http.StatusOK)
}

// health reports liveness only. It never touches the storage backend.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: models.StatusOK}, http.StatusOK)
}

// ready reports whether the storage backend answers.
func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	if err := h.services.AppInfoService.Ready(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.ready").Msg("backend is not ready")
		writeError(w, http.StatusServiceUnavailable, app.MsgNotReady)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: models.StatusOK}, http.StatusOK)
}

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.BuildInfo(r.Context())
	utils.WriteJSON(w, buildInfo.Response(), http.StatusOK)
}

// me echoes the identity of the bearer token attached by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, app.MsgNotAuthenticated)
		return
	}

	utils.WriteJSON(w, models.MeResponse{
		User:      token.Subject,
		ExpiresAt: token.ExpiresAtTime(),
	}, http.StatusOK)
}
