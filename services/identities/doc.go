// Package identities is the facade for remote identity state: listing the
// keys the relay has seen and raising their trust level. Trust moves up a
// monotonic lattice (Untrusted, TrustedUnverified, TrustedVerified); no
// regression transition is exposed, and re-verifying an already-verified
// identity is a no-op on the remote side.
package identities
