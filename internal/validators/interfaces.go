// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client payloads before they reach storage.
//
// Rules live as go-playground/validator struct tags on the models types;
// this package registers the custom tags they need (maxbytes) and turns
// violations into a [ValidationError] listing every rejected field.
package validators

import "context"

// Validator validates obj. Passing field names limits the check to those
// fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
