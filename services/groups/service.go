package groups

import (
	"context"
	"errors"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
	"signalrest/recipient"
)

// Service is the group facade. Reads always re-fetch from the relay —
// nothing is cached, so a Group reflects the last successful fetch and no
// more. Every mutation requires a group identifier and fails fast locally
// with a MissingGroupIDError when it is absent, rather than letting the
// relay reject a request that could never have meant anything.
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

// groupTarget validates the identifier every mutation needs.
func groupTarget(op capability.Operation, id string) (types.GroupID, error) {
	if id == "" {
		return "", &types.MissingGroupIDError{Op: string(op)}
	}
	return recipient.NormalizeGroup(id)
}

// Create creates a group and returns its canonical identifier.
func (s *Service) Create(
	ctx context.Context,
	name string,
	members []string,
	opts types.CreateGroupOptions,
) (types.Result[types.GroupID], error) {
	recipients, err := recipient.NormalizeAll(members)
	if err != nil {
		return types.Result[types.GroupID]{}, err
	}
	version, err := capability.Resolve(capability.OpCreateGroup, s.versions)
	if err != nil {
		return types.Result[types.GroupID]{}, err
	}
	req, err := wire.BuildCreateGroup(s.number, name, recipients, opts, version)
	if err != nil {
		return types.Result[types.GroupID]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.GroupID]{}, err
	}
	id, err := wire.DecodeCreatedGroup(resp)
	if err != nil {
		// Creation is a mutation: remote rejection comes back as a failed
		// result, not an error.
		var remote *types.RemoteError
		if errors.As(err, &remote) {
			return types.Failed[types.GroupID](remote.Kind, remote.Message), nil
		}
		return types.Result[types.GroupID]{}, err
	}
	return types.Success(id), nil
}

// List fetches every group the account is in.
func (s *Service) List(ctx context.Context) ([]types.Group, error) {
	version, err := capability.Resolve(capability.OpListGroups, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildListGroups(s.number, version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeGroups(resp)
}

// Get fetches one group.
func (s *Service) Get(ctx context.Context, id string) (types.Group, error) {
	gid, err := groupTarget(capability.OpGetGroup, id)
	if err != nil {
		return types.Group{}, err
	}
	version, err := capability.Resolve(capability.OpGetGroup, s.versions)
	if err != nil {
		return types.Group{}, err
	}
	req, err := wire.BuildGetGroup(s.number, gid, version)
	if err != nil {
		return types.Group{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Group{}, err
	}
	return wire.DecodeGroup(resp)
}

// Update applies a patch to the group's name, description, or avatar.
func (s *Service) Update(
	ctx context.Context,
	id string,
	patch types.GroupPatch,
) (types.Result[types.Unit], error) {
	gid, err := groupTarget(capability.OpUpdateGroup, id)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(capability.OpUpdateGroup, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildUpdateGroup(s.number, gid, patch, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return s.unit(ctx, req)
}

// Delete deletes the group for everyone.
func (s *Service) Delete(ctx context.Context, id string) (types.Result[types.Unit], error) {
	return s.plain(ctx, capability.OpDeleteGroup, id, wire.BuildDeleteGroup)
}

// AddMembers invites recipients into the group. One request covers the
// whole batch; the relay reports per-member outcomes.
func (s *Service) AddMembers(
	ctx context.Context,
	id string,
	members []string,
) (types.Result[types.Unit], error) {
	return s.membership(ctx, capability.OpAddMembers, id, members, wire.BuildAddMembers)
}

// RemoveMembers removes recipients from the group.
func (s *Service) RemoveMembers(
	ctx context.Context,
	id string,
	members []string,
) (types.Result[types.Unit], error) {
	return s.membership(ctx, capability.OpRemoveMembers, id, members, wire.BuildRemoveMembers)
}

// AddAdmins promotes existing members to admin.
func (s *Service) AddAdmins(
	ctx context.Context,
	id string,
	members []string,
) (types.Result[types.Unit], error) {
	return s.membership(ctx, capability.OpAddAdmins, id, members, wire.BuildAddAdmins)
}

// RemoveAdmins demotes admins back to plain members.
func (s *Service) RemoveAdmins(
	ctx context.Context,
	id string,
	members []string,
) (types.Result[types.Unit], error) {
	return s.membership(ctx, capability.OpRemoveAdmins, id, members, wire.BuildRemoveAdmins)
}

// Block silences the group for this account.
func (s *Service) Block(ctx context.Context, id string) (types.Result[types.Unit], error) {
	return s.plain(ctx, capability.OpBlockGroup, id, wire.BuildBlockGroup)
}

// Join joins a group this account was invited to or has a link for.
func (s *Service) Join(ctx context.Context, id string) (types.Result[types.Unit], error) {
	return s.plain(ctx, capability.OpJoinGroup, id, wire.BuildJoinGroup)
}

// Quit leaves the group.
func (s *Service) Quit(ctx context.Context, id string) (types.Result[types.Unit], error) {
	return s.plain(ctx, capability.OpQuitGroup, id, wire.BuildQuitGroup)
}

type plainBuilder func(string, types.GroupID, types.APIVersion) (types.WireRequest, error)

func (s *Service) plain(
	ctx context.Context,
	op capability.Operation,
	id string,
	build plainBuilder,
) (types.Result[types.Unit], error) {
	gid, err := groupTarget(op, id)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(op, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := build(s.number, gid, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return s.unit(ctx, req)
}

type memberBuilder func(string, types.GroupID, []types.Recipient, types.APIVersion) (types.WireRequest, error)

func (s *Service) membership(
	ctx context.Context,
	op capability.Operation,
	id string,
	members []string,
	build memberBuilder,
) (types.Result[types.Unit], error) {
	gid, err := groupTarget(op, id)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	recipients, err := recipient.NormalizeAll(members)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(op, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := build(s.number, gid, recipients, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretFanout(recipients, resp), nil
}

func (s *Service) unit(ctx context.Context, req types.WireRequest) (types.Result[types.Unit], error) {
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Compile-time assertion that Service implements domain.GroupService.
var _ domain.GroupService = (*Service)(nil)
