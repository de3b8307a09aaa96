// Package contacts is the facade for the account's contact list and for
// checking which phone numbers are registered with the service.
package contacts
