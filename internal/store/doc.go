// Package store provides the durable key-value storage the session layer
// writes through to.
//
// Three interchangeable backends implement [KeyValueStore]:
//
//   - SQLite (mattn/go-sqlite3) with a goose-managed schema and squirrel
//     built queries; the default for desktop use.
//   - Badger (dgraph-io/badger/v3) directory store.
//   - An in-process map, for tests and throwaway runs.
//
// Values are stored as plain text.
package store
