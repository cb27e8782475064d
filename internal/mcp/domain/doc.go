// Package domain defines the MCP tools that drive netrun tables.
//
// A table is one live session: its state, the engine that owns its random
// source, and the seed that source started from. Handlers look tables up in
// a Tables registry, validate their input, and run the engine call under the
// table's lock.
package domain
