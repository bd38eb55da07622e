// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"crypto/subtle"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/internal/app"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
)

// contentHashHeader carries the lower-case hex SHA-256 of the request body.
const contentHashHeader = "X-Content-SHA256"

// withContentHash verifies the body digest announced in the X-Content-SHA256
// header. Requests without the header pass through untouched.
//
// The digest is computed over the decoded body, so it runs after withGZip.
func (h *Handler) withContentHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		announced := strings.ToLower(strings.TrimSpace(r.Header.Get(contentHashHeader)))
		if announced == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withContentHash").Msg("failed to read request body")
			writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		computed := utils.HashString(string(body))
		if subtle.ConstantTimeCompare([]byte(computed), []byte(announced)) != 1 {
			log.Err(ErrContentHashMismatch).Str("func", "*Handler.withContentHash").
				Str("announced", announced).
				Str("computed", computed).
				Send()
			writeError(w, http.StatusBadRequest, app.MsgIntegrityCheckFailed)
			return
		}

		next.ServeHTTP(w, r)
	})
}
