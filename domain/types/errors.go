package types

import "fmt"

// InvalidRecipientError reports a raw identifier that is neither a valid
// E.164 phone number, a UUID, nor a group token. It is raised before any
// request is built or sent.
type InvalidRecipientError struct {
	// Raw is the identifier as the caller passed it.
	Raw string
	// Index is the position in the caller's sequence, or -1 for a single value.
	Index int
}

func (e *InvalidRecipientError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid recipient %q at index %d", e.Raw, e.Index)
	}
	return fmt.Sprintf("invalid recipient %q", e.Raw)
}

// MissingGroupIDError reports a group operation invoked without a group
// identifier. Group mutations fail fast locally instead of letting the
// relay reject an obviously malformed request.
type MissingGroupIDError struct {
	// Op names the operation that required the identifier.
	Op string
}

func (e *MissingGroupIDError) Error() string {
	return fmt.Sprintf("%s requires a group id", e.Op)
}

// UnsupportedVersionError reports that no API version advertised by the
// server can carry the requested operation and features.
type UnsupportedVersionError struct {
	// Op names the operation.
	Op string
	// Need is the minimum version the operation and requested features require.
	Need APIVersion
	// Supported lists the versions the server advertises.
	Supported []APIVersion
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("%s requires api %s, server supports %v", e.Op, e.Need, e.Supported)
}

// RemoteError is a classified non-2xx response from the relay. Read
// operations that return plain values instead of a Result carry remote
// failures through this type; callers extract it with errors.As.
type RemoteError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("relay error (%d %s): %s", e.Status, e.Kind, e.Message)
}
