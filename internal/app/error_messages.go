// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the vault
// server handlers and by the client when it interprets server answers.
//
// All Msg* constants are human-readable message strings written into the
// "message" field of JSON error bodies. Keeping them in one place keeps the
// wording the server sends and the wording the client matches identical.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is returned by login when the email is unknown
	// or the auth secret does not match.
	MsgInvalidCredentials = "invalid email or password"

	// MsgEmailAlreadyExists is returned by signup for a taken email.
	MsgEmailAlreadyExists = "email already registered"

	// MsgNoTokenProvided is returned when the Authorization header is
	// missing on a protected route.
	MsgNoTokenProvided = "No token provided"

	// MsgInvalidToken is returned when the bearer token is malformed or its
	// signature or issuer do not verify.
	MsgInvalidToken = "Invalid token"

	// MsgTokenExpired is returned when the bearer token verified but is past
	// its expiry.
	MsgTokenExpired = "Token expired"

	// MsgEntryNotFound is returned when the entry does not exist or belongs
	// to someone else.
	MsgEntryNotFound = "entry not found"

	// MsgStorageUnavailable is returned when the database cannot be reached.
	MsgStorageUnavailable = "storage unavailable, try again later"

	// MsgMethodNotAllowed is returned for a known route with an unsupported
	// method.
	MsgMethodNotAllowed = "method not allowed"

	// MsgRequestTimeout is returned when a request exceeds the server's
	// request timeout.
	MsgRequestTimeout = "request timed out"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
