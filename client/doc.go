// Package client constructs and wires the signalrest facades.
//
// A Client is built from a relay URL and an account number:
//
//	c, err := client.New(client.Config{
//		ServerURL: "http://localhost:8080",
//		Number:    "+15555550100",
//	})
//	result, err := c.Messages.Send(ctx, "hi", []string{"+15555550199"}, domain.SendOptions{})
//
// Both the URL and the number are immutable for the client's lifetime. The
// transport collaborator is injectable; the default speaks HTTP through the
// transport package. No method retries, and each facade method makes at
// most one transport call — callers who want retry-on-transient wrap calls
// themselves, since the library cannot safely replay a fan-out send without
// risking duplicate delivery.
package client
