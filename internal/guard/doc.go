// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package guard decides whether a screen may render.
//
// Each check starts in [Checking] and ends in [Allowed] or [Denied]. A
// Denied decision carries the route to redirect to. Guards never surface
// errors: a failing check or a panic during one ends in Denied for protected
// screens and Allowed for the login and registration screens.
//
// [Router] picks the guard for a path using [Routes].
package guard
