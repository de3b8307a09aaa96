// Package domain defines the value types and contracts of the signalrest
// client: recipients, messages, groups, identities, operation results, and
// the transport and service interfaces. It contains plain types (wire/state)
// and contracts (interfaces) only; no I/O happens here.
package domain
