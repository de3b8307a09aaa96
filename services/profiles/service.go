// Package profiles is the facade for the account's own profile.
package profiles

import (
	"context"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
)

// Service updates the profile other accounts see for this one.
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

// Update sets the profile name and, when avatar is non-nil, the avatar.
func (s *Service) Update(
	ctx context.Context,
	name string,
	avatar []byte,
) (types.Result[types.Unit], error) {
	version, err := capability.Resolve(capability.OpUpdateProfile, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildUpdateProfile(s.number, name, avatar, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)
