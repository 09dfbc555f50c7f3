// Package main hosts the lsetwatch CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into codec
// and library operations: importing Lsetwatch export files into the SQLite
// library, exporting the library back to the wire format, checking files
// without storing them, and configuration scaffolding. It centralizes
// configuration resolution and structured logging setup so subcommands can
// focus on user experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
