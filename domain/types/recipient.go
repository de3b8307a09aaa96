package types

// RecipientKind discriminates the Recipient union.
type RecipientKind int

const (
	// RecipientUnknown is the zero value; no tag populated.
	RecipientUnknown RecipientKind = iota
	// RecipientPhoneNumber is an E.164 phone number, e.g. "+15555550100".
	RecipientPhoneNumber
	// RecipientAccountID is the UUID of a phone-number-less account.
	RecipientAccountID
	// RecipientGroupID is a group conversation token.
	RecipientGroupID
)

// String returns a short name for the kind, used in error messages.
func (k RecipientKind) String() string {
	switch k {
	case RecipientPhoneNumber:
		return "phone number"
	case RecipientAccountID:
		return "account id"
	case RecipientGroupID:
		return "group id"
	default:
		return "unknown"
	}
}

// Recipient is a tagged union of the three identifier forms the relay
// understands. Exactly one tag is populated; the zero value is no recipient.
// Construct values through the recipient package so the invariants hold.
type Recipient struct {
	kind RecipientKind
	raw  string
}

// PhoneNumberRecipient wraps an already-validated E.164 number. The number is
// kept byte-for-byte as given; no reformatting happens on the way out.
func PhoneNumberRecipient(number string) Recipient {
	return Recipient{kind: RecipientPhoneNumber, raw: number}
}

// AccountIDRecipient wraps an already-normalized (lowercase) account UUID.
func AccountIDRecipient(id string) Recipient {
	return Recipient{kind: RecipientAccountID, raw: id}
}

// GroupRecipient wraps a canonical group identifier.
func GroupRecipient(id GroupID) Recipient {
	return Recipient{kind: RecipientGroupID, raw: string(id)}
}

// Kind reports which tag is populated.
func (r Recipient) Kind() RecipientKind { return r.kind }

// IsZero reports whether no tag is populated.
func (r Recipient) IsZero() bool { return r.kind == RecipientUnknown }

// IsGroup reports whether the recipient is a group conversation.
func (r Recipient) IsGroup() bool { return r.kind == RecipientGroupID }

// GroupID returns the canonical group token, or "" for non-group recipients.
func (r Recipient) GroupID() GroupID {
	if r.kind != RecipientGroupID {
		return ""
	}
	return GroupID(r.raw)
}

// String returns the identifier as held: the E.164 number as given, the
// lowercase UUID, or the canonical group token.
func (r Recipient) String() string { return r.raw }

// Wire returns the form the relay expects in request bodies and paths.
// Groups travel with the "group." prefix; the other kinds travel as-is.
func (r Recipient) Wire() string {
	if r.kind == RecipientGroupID {
		return "group." + r.raw
	}
	return r.raw
}
