// Package commands defines the signalctl CLI and wires dependencies for subcommands.
//
// Commands
//
//   - send         Send a message, optionally with attachments
//   - receive      Drain pending messages
//   - groups       List, create and mutate group conversations
//   - identities   List remote identities and verify safety numbers
//   - contacts     Contact list, device sync, registration lookups
//   - attachments  List, download and delete stored attachments
//   - profile      Update the account's profile
//   - about        Show the relay's versions and capabilities
//
// # Implementation
//
// The root command resolves configuration (flags over SIGNAL_API_URL,
// SIGNAL_NUMBER, LOG_LEVEL) and constructs one client before any subcommand
// runs, so handlers share a transport with connection pooling.
package commands
