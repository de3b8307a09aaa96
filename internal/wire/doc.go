// Package wire maps domain operations onto the relay's versioned HTTP+JSON
// contract and back. The builder half shapes request bodies per API version,
// resolving cross-version field renames so the facades never see them; the
// interpreter half classifies the relay's heterogeneous response shapes into
// typed results, including the per-recipient outcomes of fan-out operations.
// Neither half performs I/O.
package wire
