// Package messages is the facade for message traffic: sending with
// attachments, quotes and mentions, reactions, receipts, typing indicators,
// and draining inbound envelopes. Fan-out sends return a typed result in
// which partial delivery is a normal outcome, never an error.
package messages
