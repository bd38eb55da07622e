// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive item browser of the command-line
// client on top of bubbletea.
//
// The browser talks to the API only through [adapter.ServerAdapter]. It
// opens on a login form unless the adapter already holds a token, then
// shows the item list with a detail view and a create form.
package tui
