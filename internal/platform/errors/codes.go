// Package errors provides structured error handling for the netrun engine.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Graph errors
	CodeNodeNotFound     Code = "NODE_NOT_FOUND"
	CodeRootProtected    Code = "ROOT_PROTECTED"
	CodeInvalidNodePatch Code = "INVALID_NODE_PATCH"
	CodeUnknownNodeType  Code = "UNKNOWN_NODE_TYPE"

	// Generator errors
	CodeUnknownDifficulty Code = "UNKNOWN_DIFFICULTY"

	// Turn errors
	CodeNoActionsLeft  Code = "NO_ACTIONS_LEFT"
	CodeUnknownProfile Code = "UNKNOWN_PROFILE"
	CodeUnknownProgram Code = "UNKNOWN_PROGRAM"
	CodeUnknownAction  Code = "UNKNOWN_ACTION"

	// Snapshot errors
	CodeSnapshotMalformed Code = "SNAPSHOT_MALFORMED"

	// Storage errors
	CodeNotFound        Code = "NOT_FOUND"
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
)

// Kind groups codes into the engine's error taxonomy.
type Kind string

const (
	KindInvalidOperation  Kind = "InvalidOperation"
	KindNotFound          Kind = "NotFound"
	KindMalformedSnapshot Kind = "MalformedSnapshot"
	KindInvalidArgument   Kind = "InvalidArgument"
	KindInternal          Kind = "Internal"
)

// Kind maps a code to its taxonomy kind.
func (c Code) Kind() Kind {
	switch c {
	case CodeRootProtected,
		CodeNoActionsLeft,
		CodeInvalidNodePatch:
		return KindInvalidOperation

	case CodeNodeNotFound,
		CodeNotFound,
		CodeSessionNotFound:
		return KindNotFound

	case CodeSnapshotMalformed:
		return KindMalformedSnapshot

	case CodeUnknownNodeType,
		CodeUnknownDifficulty,
		CodeUnknownProfile,
		CodeUnknownProgram,
		CodeUnknownAction:
		return KindInvalidArgument

	default:
		return KindInternal
	}
}
