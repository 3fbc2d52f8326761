// Package storage provides audit record storage backends.
//
// Two backends are available:
//
//   - MemoryBackend: in-process storage for tests and ephemeral
//     deployments. Records are lost on restart.
//   - SQLiteBackend: durable single-file storage using WAL mode, a
//     single writer, and prepared statements.
//
// Both backends implement audit.Backend and are safe for concurrent use.
package storage
