// Package library persists imported Lsetwatch rows in SQLite.
//
// The Store manages database connections, schema initialization, and the
// upsert/list/remove operations the CLI commands build on. Each entry keeps
// the full decoded row as a JSON blob next to a handful of display columns,
// so exports reproduce every column while queries stay cheap. Entries are
// keyed by set number and version; re-importing the same set replaces the
// stored row and records which import session produced it.
//
// Schema changes bump the version in schema.go; users clear the database to
// adopt the new schema.
package library
