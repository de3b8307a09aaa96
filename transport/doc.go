// Package transport provides the default HTTP implementation of the
// domain.Transport collaborator.
//
// The transport is deliberately dumb: it concatenates the base URL with an
// already-shaped path, sends the bytes it was handed, and returns the status
// and body it got, whatever they are. Timeouts and cancellation come from
// the caller's context and the injected *http.Client; no retries happen
// here or anywhere else in the module.
package transport
