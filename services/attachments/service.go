package attachments

import (
	"context"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
)

// Service is the attachment facade over the relay's attachment store.
// Upload happens inline with a send; this facade only lists, fetches, and
// deletes what the relay already holds. Bytes stream through the transport
// collaborator — nothing is persisted here.
type Service struct {
	versions  []types.APIVersion
	transport domain.Transport
}

// New returns the facade for the given server-advertised API versions and
// transport. Attachment endpoints are account-independent.
func New(versions []types.APIVersion, transport domain.Transport) *Service {
	return &Service{versions: versions, transport: transport}
}

// List fetches the identifiers of all stored attachments.
func (s *Service) List(ctx context.Context) ([]types.AttachmentID, error) {
	version, err := capability.Resolve(capability.OpListAttachments, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildListAttachments(version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeAttachmentIDs(resp)
}

// Get fetches one attachment's raw bytes.
func (s *Service) Get(ctx context.Context, id string) ([]byte, error) {
	version, err := capability.Resolve(capability.OpGetAttachment, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildGetAttachment(types.AttachmentID(id), version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := wire.Check(resp); err != nil {
		return nil, err
	}
	return resp.Body, nil
}

// Delete removes one attachment from the relay's store.
func (s *Service) Delete(ctx context.Context, id string) (types.Result[types.Unit], error) {
	version, err := capability.Resolve(capability.OpDeleteAttachment, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildDeleteAttachment(types.AttachmentID(id), version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Compile-time assertion that Service implements domain.AttachmentService.
var _ domain.AttachmentService = (*Service)(nil)
