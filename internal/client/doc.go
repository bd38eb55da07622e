// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the scaffold API.
//
// Each subcommand maps to one API call made through an
// [adapter.ServerAdapter]. Results are printed to the configured writer as
// indented JSON, so the output can be piped into other tools.
package client
