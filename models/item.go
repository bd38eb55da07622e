// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Item is the only persisted business entity of the scaffold.
//
// The identifier is assigned by the storage backend and is always exposed
// as an opaque string: relational backends render their auto-increment
// integer in base 10, the document backend uses a generated UUID.
// Items are immutable once created.
type Item struct {
	// ID is the backend-assigned identifier. Empty until the item is persisted.
	ID string `json:"id"`

	// Name is the required display name of the item (at most 255 bytes).
	Name string `json:"name" validate:"required,maxbytes=255"`

	// Description is optional free text (at most 1024 bytes).
	// A nil pointer is stored as NULL and rendered as JSON null.
	Description *string `json:"description" validate:"omitempty,maxbytes=1024"`
}

// TableName returns the name of the relational table (or document
// collection) that stores items.
func (i Item) TableName() string {
	return "items"
}

// CreateItemRequest is the accepted body of POST /items/.
// Unknown fields are rejected by the HTTP layer.
type CreateItemRequest struct {
	Name        string  `json:"name" validate:"required,maxbytes=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,maxbytes=1024"`
}

// ToItem converts the request into an unsaved [Item].
func (r CreateItemRequest) ToItem() Item {
	return Item{
		Name:        r.Name,
		Description: r.Description,
	}
}

// CreateItemResponse is returned by POST /items/ on success.
type CreateItemResponse struct {
	ID string `json:"id"`
}

// ListItemsRequest carries the parameters of GET /items/.
// A zero Limit selects the configured default.
type ListItemsRequest struct {
	Limit int `json:"limit"`
}
