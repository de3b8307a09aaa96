package types

// GroupID is the opaque token identifying a group conversation. It is stored
// in canonical form: URL-safe base64 alphabet, no padding, no "group." prefix.
type GroupID string

// String returns the string form of the group identifier.
func (g GroupID) String() string { return string(g) }

// Fingerprint is the safety number presented to users when comparing keys.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// AttachmentID identifies an attachment stored by the relay service.
type AttachmentID string

// String returns the string form of the attachment identifier.
func (id AttachmentID) String() string { return string(id) }

// Unit is the payload of operations that carry no result data beyond
// success, partial success, or failure.
type Unit struct{}
