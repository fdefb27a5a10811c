// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The adapter error stays in the chain.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrAuthMissing):
		return fmt.Errorf("%w: %w", ErrAuthMissing, err)

	case errors.Is(err, adapter.ErrSessionExpired):
		if msg == app.MsgInvalidCredentials {
			return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrSessionExpired, err)

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return fmt.Errorf("%w: %w", ErrEmailTaken, err)
		}

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)

	case errors.Is(err, adapter.ErrServerUnavailable):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the server message from "<kind>: <message>".
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
