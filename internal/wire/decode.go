package wire

import (
	"github.com/samber/lo"

	"signalrest/domain/types"
	"signalrest/recipient"
)

// Decoders for read operations: wire JSON in, domain values out. Identifier
// strings coming back from the relay pass through the same normalization
// boundary as caller input; entries the normalizer rejects are dropped
// rather than failing the whole read.

// DecodeCreatedGroup extracts the new group's canonical identifier.
func DecodeCreatedGroup(resp types.WireResponse) (types.GroupID, error) {
	envelope, err := Decode[createGroupResponse](resp)
	if err != nil {
		return "", err
	}
	id, err := recipient.NormalizeGroup(envelope.ID)
	if err != nil {
		return "", err
	}
	return id, nil
}

// DecodeGroups maps the group-list response.
func DecodeGroups(resp types.WireResponse) ([]types.Group, error) {
	objects, err := Decode[[]groupObject](resp)
	if err != nil {
		return nil, err
	}
	return lo.Map(objects, func(o groupObject, _ int) types.Group { return groupFromWire(o) }), nil
}

// DecodeGroup maps a single-group response.
func DecodeGroup(resp types.WireResponse) (types.Group, error) {
	object, err := Decode[groupObject](resp)
	if err != nil {
		return types.Group{}, err
	}
	return groupFromWire(object), nil
}

func groupFromWire(o groupObject) types.Group {
	id, _ := recipient.CanonicalGroupID(o.ID)
	return types.Group{
		ID:          id,
		Name:        o.Name,
		Description: o.Description,
		Members:     normalizeLoose(o.Members),
		Admins:      normalizeLoose(o.Admins),
		Blocked:     o.Blocked,
		InviteLink:  o.InviteLink,
		Permissions: types.GroupPermissions{
			AddMembers: types.GroupPermission(o.Permissions.AddMembers),
			EditGroup:  types.GroupPermission(o.Permissions.EditGroup),
		},
	}
}

func normalizeLoose(raws []string) []types.Recipient {
	out := make([]types.Recipient, 0, len(raws))
	for _, raw := range raws {
		if r, err := recipient.Normalize(raw); err == nil {
			out = append(out, r)
		}
	}
	return out
}

// DecodeIdentities maps the identity-list response.
func DecodeIdentities(resp types.WireResponse) ([]types.Identity, error) {
	objects, err := Decode[[]identityObject](resp)
	if err != nil {
		return nil, err
	}
	identities := make([]types.Identity, 0, len(objects))
	for _, o := range objects {
		r, err := recipient.Normalize(o.Number)
		if err != nil {
			continue
		}
		identities = append(identities, types.Identity{
			Recipient:   r,
			Fingerprint: types.Fingerprint(o.SafetyNumber),
			Trust:       types.ParseTrustLevel(o.Status),
			AddedAt:     o.AddedTimestamp,
		})
	}
	return identities, nil
}

// DecodeContacts maps the contact-list response.
func DecodeContacts(resp types.WireResponse) ([]types.Contact, error) {
	objects, err := Decode[[]contactObject](resp)
	if err != nil {
		return nil, err
	}
	contacts := make([]types.Contact, 0, len(objects))
	for _, o := range objects {
		r, err := recipient.Normalize(o.Number)
		if err != nil {
			continue
		}
		contacts = append(contacts, types.Contact{
			Recipient:   r,
			Name:        o.Name,
			ProfileName: o.ProfileName,
			Blocked:     o.Blocked,
		})
	}
	return contacts, nil
}

// DecodeSearch maps registration lookups back onto the recipients that were
// asked about.
func DecodeSearch(resp types.WireResponse) (map[types.Recipient]bool, error) {
	results, err := Decode[[]searchResult](resp)
	if err != nil {
		return nil, err
	}
	registered := make(map[types.Recipient]bool, len(results))
	for _, res := range results {
		r, err := recipient.Normalize(res.Number)
		if err != nil {
			continue
		}
		registered[r] = res.Registered
	}
	return registered, nil
}

// DecodeAttachmentIDs maps the attachment-list response.
func DecodeAttachmentIDs(resp types.WireResponse) ([]types.AttachmentID, error) {
	names, err := Decode[[]string](resp)
	if err != nil {
		return nil, err
	}
	return lo.Map(names, func(s string, _ int) types.AttachmentID {
		return types.AttachmentID(s)
	}), nil
}

// DecodeReceived maps drained envelopes. Envelopes without a data message
// (receipts, typing events) surface with an empty body so callers still see
// the source and timestamp.
func DecodeReceived(resp types.WireResponse) ([]types.ReceivedMessage, error) {
	envelopes, err := Decode[[]receiveEnvelope](resp)
	if err != nil {
		return nil, err
	}
	messages := make([]types.ReceivedMessage, 0, len(envelopes))
	for _, e := range envelopes {
		source := e.Envelope.Source
		if source == "" {
			source = e.Envelope.SourceUUID
		}
		r, err := recipient.Normalize(source)
		if err != nil {
			continue
		}
		msg := types.ReceivedMessage{Source: r, Timestamp: e.Envelope.Timestamp}
		if dm := e.Envelope.DataMessage; dm != nil {
			msg.Body = dm.Message
			if dm.GroupInfo != nil {
				msg.Group, _ = recipient.CanonicalGroupID(dm.GroupInfo.GroupID)
			}
			for _, a := range dm.Attachments {
				msg.Attachments = append(msg.Attachments, types.AttachmentID(a.ID))
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// DecodeAbout maps the relay's self-description. Unknown version strings
// are skipped; a missing build number defaults to 1 and a missing mode to
// "unknown", matching what old relays actually report.
func DecodeAbout(resp types.WireResponse) (types.About, error) {
	envelope, err := Decode[aboutResponse](resp)
	if err != nil {
		return types.About{}, err
	}
	about := types.About{
		Build:        envelope.Build,
		Mode:         envelope.Mode,
		Capabilities: envelope.Capabilities,
	}
	for _, s := range envelope.Versions {
		if v, err := types.ParseAPIVersion(s); err == nil {
			about.Versions = append(about.Versions, v)
		}
	}
	if about.Build == 0 {
		about.Build = 1
	}
	if about.Mode == "" {
		about.Mode = "unknown"
	}
	return about, nil
}
