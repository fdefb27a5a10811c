// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the request decoders. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not the expected
	// JSON document.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidQuery is returned when a list query parameter cannot be
	// parsed.
	ErrInvalidQuery = errors.New("invalid query parameter")
)
