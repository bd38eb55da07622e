// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scaffold-api/models"
)

const listNameWidth = 40

type listModel struct {
	items   []models.Item
	idx     int
	loading bool
}

func (m listModel) current() (models.Item, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Item{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) move(delta int) listModel {
	if len(m.items) == 0 {
		return m
	}
	m.idx = min(max(m.idx+delta, 0), len(m.items)-1)
	return m
}

func (m listModel) View() string {
	if len(m.items) == 0 {
		if m.loading {
			return "Loading...\n"
		}
		return "No items\n"
	}

	var b strings.Builder
	for i, item := range m.items {
		line := fmt.Sprintf("%6s  %s", item.ID, fitText(item.Name, listNameWidth))
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}
