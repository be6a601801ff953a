// Package stubapi is a local, in-memory implementation of the FitiPlus API
// contract for development and integration tests.
//
// Every endpoint the client calls is served under /<version>. A single
// account is seeded (admin@fitiplus.com / admin123). Access tokens are HS256
// JWTs with an expiry; refresh tokens are opaque and rotated on use.
// Nothing is persisted.
package stubapi
