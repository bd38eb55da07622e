// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/internal/validators"
	"github.com/MKhiriev/go-scaffold-api/models"
)

// errorStatuses is checked in order, so more specific errors come first.
var errorStatuses = []struct {
	target error
	status int
}{
	{store.ErrItemNotFound, http.StatusNotFound},

	{service.ErrInvalidDataProvided, http.StatusUnprocessableEntity},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrBackendNotReady, http.StatusServiceUnavailable},

	{store.ErrItemNotSaved, http.StatusInternalServerError},
	{store.ErrPersistence, http.StatusInternalServerError},
	{store.ErrUnsupportedStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// errorDetail renders err as the detail of an error body: the rejected
// fields for validation failures, fallback otherwise.
func errorDetail(err error, fallback string) any {
	if fields, ok := validators.FieldErrors(err); ok {
		return fields
	}
	return fallback
}

func writeError(w http.ResponseWriter, status int, detail any) {
	_, _ = utils.WriteJSON(w, models.ErrorResponse{Detail: detail}, status)
}
