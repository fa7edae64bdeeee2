// Copyright (c) 2025-2026 Lingua Lore Authors
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the publishing workflow: the business rules
// applied on top of raw storage operations. Handlers pass already-typed
// field values in; the workflow normalizes and derives fields, enforces
// uniqueness and referential rules, and returns domain records.
package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks a required field that is missing or empty. Wrapped
// errors carry the field detail; match with errors.Is.
var ErrValidation = errors.New("validation failed")

// ErrCategoryInUse blocks deletion of a category that posts still reference.
var ErrCategoryInUse = errors.New("category has posts referencing it")

func validationErrf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
