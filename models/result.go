// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ResultKind tags the outcome of a gateway operation.
type ResultKind int

const (
	ResultSuccess ResultKind = iota
	ResultFailure
	ResultTimeout
)

// String implements fmt.Stringer.
func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "success"
	case ResultFailure:
		return "failure"
	case ResultTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Result is returned by every session gateway operation instead of an error.
// Screens show Message verbatim; Err carries the classified cause for
// programmatic checks via errors.Is.
type Result struct {
	Kind ResultKind

	// Identity is set on successful login, register and profile fetch.
	Identity *Identity

	// OnboardingCompleted mirrors the flag sent by the API on login.
	OnboardingCompleted bool

	// Offline marks a session created by the offline demo login.
	Offline bool

	Message string

	// StatusCode is the HTTP status of the response, or 0 when no response
	// was received or the operation never reached the network.
	StatusCode int

	Err error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Kind == ResultSuccess
}
