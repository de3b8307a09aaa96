package types

// Contact is one entry of the account's contact list as the relay reports it.
type Contact struct {
	Recipient Recipient
	// Name is the contact name set by this account.
	Name string
	// ProfileName is the name the contact chose for themselves.
	ProfileName string
	Blocked     bool
}

// About is the relay's self-description from its about endpoint.
type About struct {
	// Versions lists the API generations the relay serves, in order.
	Versions []APIVersion
	// Build is the relay's build number, 1 when not reported.
	Build int
	// Mode is the relay's operating mode ("normal", "json-rpc", ...),
	// "unknown" when not reported.
	Mode string
	// Capabilities maps an endpoint ("v2/send") to its feature names.
	Capabilities map[string][]string
}

// Has reports whether the relay advertises the named capability for the
// given endpoint.
func (a About) Has(endpoint, capability string) bool {
	for _, c := range a.Capabilities[endpoint] {
		if c == capability {
			return true
		}
	}
	return false
}
