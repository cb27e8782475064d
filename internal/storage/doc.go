// Package storage defines the persistence interfaces for netrun tables.
//
// Tables are saved as whole session snapshots under a caller-chosen name;
// the SQLite implementation lives in the sqlite subpackage.
//
// # Error Types
//
//   - ErrNotFound: Indicates a requested snapshot is missing.
package storage
