package types

import "net/url"

// WireRequest is one fully shaped HTTP request for the relay, produced by
// the request builder and executed by the transport. The path already
// carries the version prefix; Version is repeated for transports that key
// behavior on it.
type WireRequest struct {
	Method  string
	Path    string
	Query   url.Values
	Body    []byte
	Version APIVersion
}

// WireResponse is the raw outcome of one transport call. The transport
// reports any status it received; classification happens in the response
// interpreter, never in the transport.
type WireResponse struct {
	Status int
	Body   []byte
}
