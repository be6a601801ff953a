// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package stubapi

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header.
var (
	ErrEmptyAuthorizationHeader   = errors.New("empty `Authorization` header")
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")
	ErrTokenRevoked               = errors.New("token revoked")
)

// Errors of the in-memory user directory.
var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("wrong password")
	ErrUnknownRefresh   = errors.New("unknown refresh token")
	ErrIncompleteFields = errors.New("missing required fields")
)
