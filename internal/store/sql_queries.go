// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

const sessionKVTable = "session_kv"

func buildGetValueQuery(key string) (string, []any, error) {
	return sq.Select("value").
		From(sessionKVTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

// buildUpsertValueQuery relies on SQLite's ON CONFLICT clause so that a Set
// is a single statement.
func buildUpsertValueQuery(key, value string, now time.Time) (string, []any, error) {
	return sq.Insert(sessionKVTable).
		Columns("key", "value", "updated_at").
		Values(key, value, now.UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteValuesQuery(keys []string) (string, []any, error) {
	return sq.Delete(sessionKVTable).
		Where(sq.Eq{"key": keys}).
		ToSql()
}
