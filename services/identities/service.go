package identities

import (
	"context"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
	"signalrest/recipient"
)

// Service is the identity facade. The identity lifecycle is owned by the
// remote service; this facade only relays trust transitions, and only ever
// upward: there is deliberately no operation that lowers a trust level.
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

// List fetches every identity the relay has seen keys for.
func (s *Service) List(ctx context.Context) ([]types.Identity, error) {
	version, err := capability.Resolve(capability.OpListIdentities, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildListIdentities(s.number, version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeIdentities(resp)
}

// Trust verifies the recipient's fingerprint, raising the identity to
// TrustedVerified. Trusting an already-verified identity with the same
// fingerprint is a no-op on the remote side and comes back as plain
// success, so the trust level never moves backward through this call.
// With TrustAllKnown set, the fingerprint is not sent and the relay trusts
// every key it has seen for the account instead.
func (s *Service) Trust(
	ctx context.Context,
	who string,
	fingerprint types.Fingerprint,
	opts types.TrustOptions,
) (types.Result[types.Identity], error) {
	target, err := recipient.Normalize(who)
	if err != nil {
		return types.Result[types.Identity]{}, err
	}
	version, err := capability.Resolve(capability.OpTrustIdentity, s.versions)
	if err != nil {
		return types.Result[types.Identity]{}, err
	}
	req, err := wire.BuildTrustIdentity(s.number, target, fingerprint, opts, version)
	if err != nil {
		return types.Result[types.Identity]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Identity]{}, err
	}

	outcome := wire.InterpretUnit(resp)
	if outcome.IsFailure() {
		return types.Failed[types.Identity](outcome.Reason.Kind, outcome.Reason.Message), nil
	}
	trust := types.TrustedVerified
	if opts.TrustAllKnown {
		// Blanket trust without a verified safety number only reaches the
		// middle of the lattice.
		trust = types.TrustedUnverified
	}
	return types.Success(types.Identity{
		Recipient:   target,
		Fingerprint: fingerprint,
		Trust:       trust,
	}), nil
}

// Compile-time assertion that Service implements domain.IdentityService.
var _ domain.IdentityService = (*Service)(nil)
