// Package attachments is the facade for attachments stored by the relay.
package attachments
