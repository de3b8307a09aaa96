package interfaces

import (
	"context"

	"signalrest/domain/types"
)

// Transport issues one already-shaped request against the relay and hands
// back whatever came over the wire. It is injected, not owned: timeouts,
// TLS, auth headers and connection reuse are its business. It must not
// interpret status codes; any response it received is a success from its
// point of view, and its errors mean the call itself could not complete.
type Transport interface {
	Execute(ctx context.Context, request types.WireRequest) (types.WireResponse, error)
}
