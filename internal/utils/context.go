// Package utils provides general-purpose helpers shared by the client and the
// stub API: the resty HTTP client constructor, JWT minting and inspection,
// JSON response writing, UUID generation and typed context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SubjectCtxKey is the key under which the stub API auth middleware stores
// the authenticated user id (the JWT "sub" claim).
var SubjectCtxKey = contextKey("subject")

// WithSubject returns a copy of ctx carrying the user id.
func WithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, SubjectCtxKey, subject)
}

// GetSubjectFromContext retrieves the user id stored by [WithSubject].
// ok is false when the value is missing, empty or of another type.
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(SubjectCtxKey).(string)
	return subject, ok && subject != ""
}
