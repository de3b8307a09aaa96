package wire

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"

	"signalrest/domain/types"
	"signalrest/internal/capability"
)

// SendFeatures derives the capability features a send with these options
// needs, so the facade and the builder agree on what version to ask for.
func SendFeatures(opts types.SendOptions) []capability.Feature {
	var feats []capability.Feature
	if len(opts.Attachments) > 1 {
		feats = append(feats, capability.FeatureMultiAttachment)
	}
	if len(opts.Mentions) > 0 {
		feats = append(feats, capability.FeatureMentions)
	}
	if opts.Quote != nil {
		feats = append(feats, capability.FeatureQuotes)
	}
	return feats
}

// ensure rejects a version that cannot carry the operation. Builders never
// silently degrade a request to an older shape.
func ensure(op capability.Operation, v types.APIVersion, feats ...capability.Feature) error {
	if capability.Supports(v, op, feats...) {
		return nil
	}
	need, _ := capability.Requires(op, feats...)
	return &types.UnsupportedVersionError{
		Op:        string(op),
		Need:      need,
		Supported: []types.APIVersion{v},
	}
}

func request(method, path string, v types.APIVersion, body any) (types.WireRequest, error) {
	req := types.WireRequest{Method: method, Path: path, Version: v}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return types.WireRequest{}, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		req.Body = b
	}
	return req, nil
}

func wireStrings(recipients []types.Recipient) []string {
	return lo.Map(recipients, func(r types.Recipient, _ int) string { return r.Wire() })
}

// encodeAttachment renders one attachment for the v2 attachment list: a
// bare reference ID, plain base64, or a data URI when the content type or
// filename matters. An empty content type is detected from the bytes.
func encodeAttachment(a types.Attachment) string {
	if a.IsRef() {
		return string(a.ID)
	}
	contentType := a.ContentType
	if contentType == "" {
		contentType = mimetype.Detect(a.Data).String()
	}
	encoded := base64.StdEncoding.EncodeToString(a.Data)
	if a.Filename != "" {
		return fmt.Sprintf("data:%s;filename=%s;base64,%s", contentType, a.Filename, encoded)
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded)
}

// BuildSend shapes a message send for the given version. V1 and V2 differ
// in attachment carriage (singular plain-base64 key vs. a list) and V1
// cannot carry mentions or quotes at all.
func BuildSend(
	number string,
	body string,
	to []types.Recipient,
	opts types.SendOptions,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpSendMessage, v, SendFeatures(opts)...); err != nil {
		return types.WireRequest{}, err
	}

	path := "/" + v.String() + "/send"
	if v == types.V1 {
		req := sendRequestV1{Number: number, Message: body, Recipients: wireStrings(to)}
		if len(opts.Attachments) == 1 {
			a := opts.Attachments[0]
			if a.IsRef() {
				req.Base64Attachment = string(a.ID)
			} else {
				req.Base64Attachment = base64.StdEncoding.EncodeToString(a.Data)
			}
		}
		return request(http.MethodPost, path, v, req)
	}

	req := sendRequestV2{
		Number:     number,
		Message:    body,
		Recipients: wireStrings(to),
		Base64Attachments: lo.Map(opts.Attachments, func(a types.Attachment, _ int) string {
			return encodeAttachment(a)
		}),
		Mentions: mentionBodies(opts.Mentions),
	}
	if q := opts.Quote; q != nil {
		req.QuoteTimestamp = q.Timestamp
		req.QuoteAuthor = q.Author
		req.QuoteMessage = q.Message
		req.QuoteMentions = mentionBodies(q.Mentions)
	}
	return request(http.MethodPost, path, v, req)
}

func mentionBodies(mentions []types.Mention) []mentionBody {
	return lo.Map(mentions, func(m types.Mention, _ int) mentionBody {
		return mentionBody{Start: m.Start, Length: m.Length, Author: m.Author}
	})
}

// BuildReceive drains pending envelopes for the account.
func BuildReceive(number string, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpReceive, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/receive/"+url.PathEscape(number), v, nil)
}

func BuildSendReaction(
	number string,
	conversation types.Recipient,
	author types.Recipient,
	timestamp int64,
	emoji string,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpSendReaction, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, "/v1/reactions/"+url.PathEscape(number), v, reactionRequest{
		Reaction:     emoji,
		Recipient:    conversation.Wire(),
		TargetAuthor: author.Wire(),
		Timestamp:    timestamp,
	})
}

func BuildRemoveReaction(
	number string,
	conversation types.Recipient,
	author types.Recipient,
	timestamp int64,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpRemoveReaction, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, "/v1/reactions/"+url.PathEscape(number), v, reactionRequest{
		Recipient:    conversation.Wire(),
		TargetAuthor: author.Wire(),
		Timestamp:    timestamp,
	})
}

func BuildSendReceipt(
	number string,
	conversation types.Recipient,
	timestamp int64,
	kind types.ReceiptKind,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpSendReceipt, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, "/v1/receipts/"+url.PathEscape(number), v, receiptRequest{
		ReceiptType: string(kind),
		Recipient:   conversation.Wire(),
		Timestamp:   timestamp,
	})
}

func BuildSendTyping(number string, to types.Recipient, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpSendTyping, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPut, "/v1/typing-indicator/"+url.PathEscape(number), v,
		typingRequest{Recipient: to.Wire()})
}

func BuildStopTyping(number string, to types.Recipient, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpStopTyping, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, "/v1/typing-indicator/"+url.PathEscape(number), v,
		typingRequest{Recipient: to.Wire()})
}

func groupsPath(number string) string {
	return "/v1/groups/" + url.PathEscape(number)
}

func groupPath(number string, id types.GroupID) string {
	return groupsPath(number) + "/" + url.PathEscape(types.GroupRecipient(id).Wire())
}

func BuildCreateGroup(
	number string,
	name string,
	members []types.Recipient,
	opts types.CreateGroupOptions,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpCreateGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	req := createGroupRequest{
		Name:        name,
		Members:     wireStrings(members),
		Description: opts.Description,
	}
	if p := opts.Permissions; p != nil {
		req.Permissions = &groupPermissionsObject{
			AddMembers: string(p.AddMembers),
			EditGroup:  string(p.EditGroup),
		}
	}
	return request(http.MethodPost, groupsPath(number), v, req)
}

func BuildListGroups(number string, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpListGroups, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, groupsPath(number), v, nil)
}

func BuildGetGroup(number string, id types.GroupID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpGetGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, groupPath(number, id), v, nil)
}

func BuildUpdateGroup(
	number string,
	id types.GroupID,
	patch types.GroupPatch,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpUpdateGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	req := updateGroupRequest{Name: patch.Name, Description: patch.Description}
	if patch.Avatar != nil {
		req.Base64Avatar = base64.StdEncoding.EncodeToString(patch.Avatar)
	}
	return request(http.MethodPut, groupPath(number, id), v, req)
}

func BuildDeleteGroup(number string, id types.GroupID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpDeleteGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, groupPath(number, id), v, nil)
}

func BuildAddMembers(
	number string,
	id types.GroupID,
	members []types.Recipient,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpAddMembers, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, groupPath(number, id)+"/members", v,
		groupMembersRequest{Members: wireStrings(members)})
}

func BuildRemoveMembers(
	number string,
	id types.GroupID,
	members []types.Recipient,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpRemoveMembers, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, groupPath(number, id)+"/members", v,
		groupMembersRequest{Members: wireStrings(members)})
}

func BuildAddAdmins(
	number string,
	id types.GroupID,
	admins []types.Recipient,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpAddAdmins, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, groupPath(number, id)+"/admins", v,
		groupAdminsRequest{Admins: wireStrings(admins)})
}

func BuildRemoveAdmins(
	number string,
	id types.GroupID,
	admins []types.Recipient,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpRemoveAdmins, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, groupPath(number, id)+"/admins", v,
		groupAdminsRequest{Admins: wireStrings(admins)})
}

func BuildBlockGroup(number string, id types.GroupID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpBlockGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, groupPath(number, id)+"/block", v, nil)
}

func BuildJoinGroup(number string, id types.GroupID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpJoinGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, groupPath(number, id)+"/join", v, nil)
}

func BuildQuitGroup(number string, id types.GroupID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpQuitGroup, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, groupPath(number, id)+"/quit", v, nil)
}

func BuildListIdentities(number string, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpListIdentities, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/identities/"+url.PathEscape(number), v, nil)
}

func BuildTrustIdentity(
	number string,
	who types.Recipient,
	fingerprint types.Fingerprint,
	opts types.TrustOptions,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpTrustIdentity, v); err != nil {
		return types.WireRequest{}, err
	}
	path := "/v1/identities/" + url.PathEscape(number) + "/trust/" + url.PathEscape(who.Wire())
	req := trustRequest{TrustAllKnownKeys: opts.TrustAllKnown}
	if !opts.TrustAllKnown {
		req.VerifiedSafetyNumber = string(fingerprint)
	}
	return request(http.MethodPut, path, v, req)
}

func BuildListContacts(number string, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpListContacts, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/contacts/"+url.PathEscape(number), v, nil)
}

func BuildUpdateContact(
	number string,
	who types.Recipient,
	name string,
	v types.APIVersion,
) (types.WireRequest, error) {
	if err := ensure(capability.OpUpdateContact, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPut, "/v1/contacts/"+url.PathEscape(number), v,
		updateContactRequest{Recipient: who.Wire(), Name: name})
}

func BuildSyncContacts(number string, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpSyncContacts, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodPost, "/v1/contacts/"+url.PathEscape(number)+"/sync", v, nil)
}

func BuildSearch(number string, numbers []types.Recipient, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpSearch, v); err != nil {
		return types.WireRequest{}, err
	}
	query := url.Values{"number": []string{number}, "numbers": wireStrings(numbers)}
	return types.WireRequest{
		Method:  http.MethodGet,
		Path:    "/v1/search",
		Query:   query,
		Version: v,
	}, nil
}

func BuildListAttachments(v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpListAttachments, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/attachments", v, nil)
}

func BuildGetAttachment(id types.AttachmentID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpGetAttachment, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/attachments/"+url.PathEscape(string(id)), v, nil)
}

func BuildDeleteAttachment(id types.AttachmentID, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpDeleteAttachment, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodDelete, "/v1/attachments/"+url.PathEscape(string(id)), v, nil)
}

func BuildUpdateProfile(number, name string, avatar []byte, v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpUpdateProfile, v); err != nil {
		return types.WireRequest{}, err
	}
	req := updateProfileRequest{Name: name}
	if avatar != nil {
		req.Base64Avatar = base64.StdEncoding.EncodeToString(avatar)
	}
	return request(http.MethodPut, "/v1/profiles/"+url.PathEscape(number), v, req)
}

func BuildAbout(v types.APIVersion) (types.WireRequest, error) {
	if err := ensure(capability.OpAbout, v); err != nil {
		return types.WireRequest{}, err
	}
	return request(http.MethodGet, "/v1/about", v, nil)
}
