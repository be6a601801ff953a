// Package server runs the stub API's HTTP server: startup, signal handling
// and graceful shutdown.
package server
