// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusOK is the status reported by a healthy server.
const StatusOK = "ok"

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// MessageResponse is a generic informational body, used by GET /.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error body. Detail is either a string or a
// list of [FieldError] values for validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// FieldError describes a single rejected field of a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// VersionResponse is the body of GET /version.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"build_date"`
	Commit  string `json:"build_commit"`
}
