// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.hello)
		r.Get("/health", h.health)
		r.Get("/ready", h.ready)
		r.Get("/version", h.version)

		r.Post("/auth/token", h.issueToken)

		// both spellings of the collection path are served
		for _, path := range []string{"/items", "/items/"} {
			r.Get(path, h.listItems)
			r.With(h.withContentHash).Post(path, h.createItem)
		}
		r.Get("/items/{id}", h.getItem)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/protected/me", h.me)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
