// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-scaffold-api/internal/app"
	"github.com/MKhiriev/go-scaffold-api/internal/logger"
	"github.com/MKhiriev/go-scaffold-api/internal/service"
	"github.com/MKhiriev/go-scaffold-api/internal/store"
	"github.com/MKhiriev/go-scaffold-api/internal/utils"
	"github.com/MKhiriev/go-scaffold-api/models"
	"github.com/go-chi/chi/v5"
)

// listItems returns up to ?limit= items. A missing limit selects the
// configured default.
func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.listItems").Str("limit", raw).Msg("invalid limit")
			writeError(w, http.StatusBadRequest, app.MsgInvalidLimit)
			return
		}
		limit = parsed
	}

	items, err := h.services.ItemService.ListItems(r.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Str("func", "*Handler.listItems").Msg("list request rejected")
			writeError(w, http.StatusBadRequest, errorDetail(err, app.MsgInvalidLimit))
			return
		}

		log.Err(err).Str("func", "*Handler.listItems").Msg("error listing items")
		writeError(w, statusFromError(err), app.MsgListFailed)
		return
	}

	if items == nil {
		items = []models.Item{}
	}
	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateItemRequest
	if err := utils.DecodeJSON(r.Body, &request, maxRequestBodyBytes); err != nil {
		log.Err(err).Str("func", "*Handler.createItem").Msg("error decoding item")
		writeError(w, http.StatusBadRequest, app.MsgInvalidJSON)
		return
	}

	item, err := h.services.ItemService.CreateItem(r.Context(), request)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusUnprocessableEntity {
			log.Err(err).Str("func", "*Handler.createItem").Msg("item rejected")
			writeError(w, status, errorDetail(err, err.Error()))
			return
		}

		log.Err(err).Str("func", "*Handler.createItem").Msg("error creating item")
		writeError(w, status, app.MsgInsertFailed)
		return
	}

	log.Info().Str("id", item.ID).Msg("item created")
	utils.WriteJSON(w, models.CreateItemResponse{ID: item.ID}, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	item, err := h.services.ItemService.GetItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) || errors.Is(err, service.ErrInvalidDataProvided) {
			log.Debug().Str("func", "*Handler.getItem").Str("id", id).Msg("item not found")
			writeError(w, http.StatusNotFound, app.MsgItemNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.getItem").Str("id", id).Msg("error reading item")
		writeError(w, statusFromError(err), app.MsgInternalServerError)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
