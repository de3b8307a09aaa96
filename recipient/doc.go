// Package recipient is the single normalization boundary for raw recipient
// identifiers. Everything entering the client as a string — phone numbers,
// account UUIDs, group tokens — passes through here exactly once and comes
// out as a tagged domain.Recipient; nothing deeper in the call graph ever
// guesses what kind of identifier it is holding.
package recipient
