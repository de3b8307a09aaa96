package contacts

import (
	"context"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
	"signalrest/recipient"
)

// Service is the contact facade: the account's contact list, pushing edits,
// syncing the list to linked devices, and registration lookups.
type Service struct {
	number    string
	versions  []types.APIVersion
	transport domain.Transport
}

// New returns the facade for the given account number, server-advertised
// API versions, and transport.
func New(number string, versions []types.APIVersion, transport domain.Transport) *Service {
	return &Service{number: number, versions: versions, transport: transport}
}

// List fetches the account's contact list.
func (s *Service) List(ctx context.Context) ([]types.Contact, error) {
	version, err := capability.Resolve(capability.OpListContacts, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildListContacts(s.number, version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeContacts(resp)
}

// Update sets the contact name for one recipient.
func (s *Service) Update(
	ctx context.Context,
	who string,
	name string,
) (types.Result[types.Unit], error) {
	target, err := recipient.Normalize(who)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(capability.OpUpdateContact, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildUpdateContact(s.number, target, name, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Sync pushes the contact list to the account's linked devices.
func (s *Service) Sync(ctx context.Context) (types.Result[types.Unit], error) {
	version, err := capability.Resolve(capability.OpSyncContacts, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildSyncContacts(s.number, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Search reports which of the given numbers are registered with the
// service, keyed by normalized recipient.
func (s *Service) Search(ctx context.Context, numbers []string) (map[types.Recipient]bool, error) {
	recipients, err := recipient.NormalizeAll(numbers)
	if err != nil {
		return nil, err
	}
	version, err := capability.Resolve(capability.OpSearch, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildSearch(s.number, recipients, version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeSearch(resp)
}

// Compile-time assertion that Service implements domain.ContactService.
var _ domain.ContactService = (*Service)(nil)
