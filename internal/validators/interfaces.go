// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the fund and service fee
// records before they reach the service and storage layers.
//
// Struct-level rules are declared as `validate` tags on the models and
// checked by go-playground/validator; every failure is translated into one
// of the sentinel errors from errors.go so callers can match them with
// [errors.Is] without depending on the validator library.
package validators

import "context"

// Validator checks a model. Passing field names limits the check to those
// fields, which partial updates such as a status change rely on.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
