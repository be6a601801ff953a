package session

import "errors"

var (
	// ErrCorruptLocalState is logged when persisted data is partial or does
	// not parse; the store discards it and starts unauthenticated.
	ErrCorruptLocalState = errors.New("corrupt local session state")

	// ErrInvalidSession is returned by Set for a nil or id-less identity or
	// an empty token.
	ErrInvalidSession = errors.New("identity and token are required")
)
