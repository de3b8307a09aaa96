package client

import (
	"context"
	"log/slog"
	"net/http"

	"signalrest/domain"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
	"signalrest/recipient"
	"signalrest/services/attachments"
	"signalrest/services/contacts"
	"signalrest/services/groups"
	"signalrest/services/identities"
	"signalrest/services/messages"
	"signalrest/services/profiles"
	"signalrest/transport"
)

// Config holds construction options for a Client.
type Config struct {
	// ServerURL is the relay's base URL, e.g. "http://localhost:8080".
	ServerURL string
	// Number is the account's phone number in E.164 form.
	Number string
	// Versions lists the API versions the server advertises. Leave nil for
	// the default of every version this library knows; fetch About and
	// reconstruct the client to pin it to an old relay.
	Versions []domain.APIVersion
	// Transport overrides the default HTTP transport when non-nil. The
	// remaining fields are ignored in that case.
	Transport domain.Transport
	// HTTPClient is used by the default transport. If nil, http.DefaultClient.
	HTTPClient *http.Client
	// Logger is used by the default transport. If nil, slog.Default().
	Logger *slog.Logger
	// Auth enables HTTP basic authentication on the default transport.
	Auth *transport.BasicAuth
}

// Client bundles the operation facades over one relay account. It holds
// only the immutable configuration captured at construction; every call is
// a pure function of its arguments plus the static capability table, so a
// Client is safe for concurrent use whenever its transport is.
type Client struct {
	Messages    domain.MessageService
	Groups      domain.GroupService
	Identities  domain.IdentityService
	Contacts    domain.ContactService
	Attachments domain.AttachmentService
	Profiles    domain.ProfileService

	number    string
	versions  []domain.APIVersion
	transport domain.Transport
}

// New validates the configuration and wires the facades.
func New(config Config) (*Client, error) {
	account, err := recipient.NormalizePhone(config.Number)
	if err != nil {
		return nil, err
	}
	number := account.String()

	tr := config.Transport
	if tr == nil {
		tr, err = transport.New(transport.Config{
			BaseURL:    config.ServerURL,
			HTTPClient: config.HTTPClient,
			Logger:     config.Logger,
			Auth:       config.Auth,
		})
		if err != nil {
			return nil, err
		}
	}

	versions := config.Versions
	if versions == nil {
		versions = []domain.APIVersion{domain.V1, domain.V2}
	}

	return &Client{
		Messages:    messages.New(number, versions, tr),
		Groups:      groups.New(number, versions, tr),
		Identities:  identities.New(number, versions, tr),
		Contacts:    contacts.New(number, versions, tr),
		Attachments: attachments.New(versions, tr),
		Profiles:    profiles.New(number, versions, tr),
		number:      number,
		versions:    versions,
		transport:   tr,
	}, nil
}

// Number returns the account number the client was constructed with.
func (c *Client) Number() string { return c.number }

// About fetches the relay's self-description: served API versions, build
// number, mode, and per-endpoint capabilities.
func (c *Client) About(ctx context.Context) (domain.About, error) {
	version, err := capability.Resolve(capability.OpAbout, c.versions)
	if err != nil {
		return domain.About{}, err
	}
	req, err := wire.BuildAbout(version)
	if err != nil {
		return domain.About{}, err
	}
	resp, err := c.transport.Execute(ctx, req)
	if err != nil {
		return domain.About{}, err
	}
	return wire.DecodeAbout(resp)
}

// Pin returns a client identical to this one but restricted to the given
// API versions, typically those reported by About against an old relay.
func (c *Client) Pin(versions ...domain.APIVersion) *Client {
	pinned := &Client{
		Messages:    messages.New(c.number, versions, c.transport),
		Groups:      groups.New(c.number, versions, c.transport),
		Identities:  identities.New(c.number, versions, c.transport),
		Contacts:    contacts.New(c.number, versions, c.transport),
		Attachments: attachments.New(versions, c.transport),
		Profiles:    profiles.New(c.number, versions, c.transport),
		number:      c.number,
		versions:    versions,
		transport:   c.transport,
	}
	return pinned
}
