// Package groups is the facade for group conversations: creation, reads,
// updates, batch membership and admin edits, and the block/join/quit
// transitions. Batch edits are one request with many members, interpreted
// into per-member outcomes.
package groups
