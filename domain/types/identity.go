package types

// TrustLevel classifies how verified a remote identity's fingerprint is.
// The levels form a lattice the library only ever moves up: no operation
// exposes a regression transition.
type TrustLevel int

const (
	Untrusted TrustLevel = iota
	TrustedUnverified
	TrustedVerified
)

// String returns the relay's wire name for the level.
func (l TrustLevel) String() string {
	switch l {
	case TrustedUnverified:
		return "TRUSTED_UNVERIFIED"
	case TrustedVerified:
		return "TRUSTED_VERIFIED"
	default:
		return "UNTRUSTED"
	}
}

// ParseTrustLevel maps the relay's wire names onto the lattice. Unknown
// names fall back to Untrusted.
func ParseTrustLevel(s string) TrustLevel {
	switch s {
	case "TRUSTED_UNVERIFIED":
		return TrustedUnverified
	case "TRUSTED_VERIFIED":
		return TrustedVerified
	default:
		return Untrusted
	}
}

// Identity is a remote account's key material as the relay reports it. The
// lifecycle is owned by the remote service; this library only relays state.
type Identity struct {
	Recipient   Recipient
	Fingerprint Fingerprint
	Trust       TrustLevel
	// AddedAt is the relay's timestamp for when the key was first seen.
	AddedAt int64
}
