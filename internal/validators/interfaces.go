// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input before it reaches the session
// gateway. The gateway itself does not validate.
//
// Every error returned by a Validator wraps [service.ErrValidation] and its
// text is the user-facing message, so screens can show err.Error() as is.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
