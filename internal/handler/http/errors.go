// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Viktor Petrenko

package http

import "errors"

// Sentinels for the three ways an Authorization header can be unusable.
// The auth middleware returns them; callers match with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader: the header is absent entirely.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader: present, but not two space-separated parts.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken: the scheme prefix is there, the token value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
