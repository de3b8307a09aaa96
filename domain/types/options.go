package types

// SendOptions carries the optional parts of a send. The zero value sends a
// plain text message.
type SendOptions struct {
	Attachments []Attachment
	// Quote makes the message a reply when non-nil.
	Quote    *Quote
	Mentions []Mention
}

// CreateGroupOptions carries the optional parts of a group creation. The
// zero value creates a group with the relay's defaults.
type CreateGroupOptions struct {
	Description string
	// Permissions overrides the relay's default permissions when non-nil.
	Permissions *GroupPermissions
}

// TrustOptions carries the optional parts of an identity trust call.
type TrustOptions struct {
	// TrustAllKnown asks the relay to trust every key it has seen for the
	// account instead of one verified safety number. Already-verified
	// identities are left as they are.
	TrustAllKnown bool
}
