// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors reported by the middlewares and request decoding.
// Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingHash is returned when a request body arrives without the
	// HashSHA256 header while the server has a hash key configured.
	ErrMissingHash = errors.New("missing `HashSHA256` header")

	// ErrHashMismatch is returned when the HashSHA256 header does not match
	// the HMAC of the request body.
	ErrHashMismatch = errors.New("integrity check failed")

	// ErrInvalidUpdatedSince is returned when the updatedSince query
	// parameter is not an RFC 3339 timestamp.
	ErrInvalidUpdatedSince = errors.New("invalid `updatedSince` parameter")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")
)
