// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/go-scaffold-api/models"
)

func renderItemDetail(item models.Item) string {
	return fmt.Sprintf("ID:          %s\nName:        %s\nDescription: %s\n",
		item.ID, item.Name, valueOrDash(item.Description))
}
