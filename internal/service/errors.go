package service

import "errors"

// Classified causes carried in models.Result.Err.
var (
	// ErrValidation marks input rejected by the caller-side validators. The
	// gateway itself never produces it.
	ErrValidation = errors.New("validation error")

	// ErrUnauthorized is an HTTP 401 or rejected offline credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrServer is any non-2xx status other than 401.
	ErrServer = errors.New("server error")

	// ErrTimeout means the request exceeded the configured bound.
	ErrTimeout = errors.New("timeout")

	// ErrNetwork means no usable response: connection failure, DNS failure,
	// or an undecodable body.
	ErrNetwork = errors.New("network error")

	// ErrNotAuthenticated is returned without a request by operations that
	// need a session when none is stored.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoRefreshToken is returned by Refresh without a request.
	ErrNoRefreshToken = errors.New("no refresh token")

	// ErrOfflineUnavailable is joined with ErrNetwork when the API is
	// offline and the operation has no offline path.
	ErrOfflineUnavailable = errors.New("unavailable offline")

	// ErrSessionChanged means the session was cleared or replaced while the
	// request was in flight, so its response was discarded.
	ErrSessionChanged = errors.New("session changed during request")
)
