// Package session holds the authenticated identity and its tokens in memory
// and mirrors every change to a [store.KeyValueStore] so a restarted client
// resumes where it left off.
//
// A [Store] is constructed explicitly by the application entry point and
// passed to the gateway and guards that need it. All methods are safe for
// concurrent use.
package session
