package types

import "fmt"

// APIVersion identifies one generation of the relay's REST surface.
// Versions are ordered; a higher version is a superset of the lower one.
type APIVersion int

const (
	// V1 is the original flat-body API.
	V1 APIVersion = iota + 1
	// V2 adds multiple attachments, mentions and quotes to send.
	V2
)

// String returns the path-prefix form, e.g. "v1".
func (v APIVersion) String() string {
	return fmt.Sprintf("v%d", int(v))
}

// ParseAPIVersion parses the form the relay advertises in its about
// endpoint ("v1", "v2").
func ParseAPIVersion(s string) (APIVersion, error) {
	switch s {
	case "v1":
		return V1, nil
	case "v2":
		return V2, nil
	default:
		return 0, fmt.Errorf("unknown api version %q", s)
	}
}
