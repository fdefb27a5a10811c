// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/validators"
)

const (
	noticeSessionExpired = "Session expired, please log in again"
	noticeLoggedOut      = "Logged out"
)

// sessionOver reports whether err means the session can no longer be used.
func sessionOver(err error) bool {
	return errors.Is(err, service.ErrSessionExpired) || errors.Is(err, service.ErrAuthMissing)
}

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	var pErr *service.PartialDecryptError
	switch {
	case errors.As(err, &vErr):
		return vErr.Field + " " + vErr.Reason
	case errors.As(err, &pErr):
		return pErr.Error()
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrEmailTaken):
		return "This email is already registered"
	case errors.Is(err, service.ErrNotFound):
		return "The entry no longer exists"
	case errors.Is(err, service.ErrServerUnavailable):
		return "Server is unreachable"
	case sessionOver(err):
		return noticeSessionExpired
	}
	return err.Error()
}
