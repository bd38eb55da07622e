// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-scaffold-api/models"

type loggedInMsg struct {
	err error
}

type itemsLoadedMsg struct {
	items []models.Item
	err   error
}

type itemCreatedMsg struct {
	id  string
	err error
}

type copiedMsg struct {
	err error
}
