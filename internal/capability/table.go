package capability

import "signalrest/domain/types"

// Operation names one entry of the relay's REST surface. The names double
// as the Op field of pre-flight errors.
type Operation string

const (
	OpSendMessage    Operation = "send_message"
	OpReceive        Operation = "receive"
	OpSendReaction   Operation = "send_reaction"
	OpRemoveReaction Operation = "remove_reaction"
	OpSendReceipt    Operation = "send_receipt"
	OpSendTyping     Operation = "send_typing"
	OpStopTyping     Operation = "stop_typing"

	OpCreateGroup   Operation = "create_group"
	OpListGroups    Operation = "list_groups"
	OpGetGroup      Operation = "get_group"
	OpUpdateGroup   Operation = "update_group"
	OpDeleteGroup   Operation = "delete_group"
	OpAddMembers    Operation = "add_group_members"
	OpRemoveMembers Operation = "remove_group_members"
	OpAddAdmins     Operation = "add_group_admins"
	OpRemoveAdmins  Operation = "remove_group_admins"
	OpBlockGroup    Operation = "block_group"
	OpJoinGroup     Operation = "join_group"
	OpQuitGroup     Operation = "quit_group"

	OpListIdentities Operation = "list_identities"
	OpTrustIdentity  Operation = "trust_identity"

	OpListContacts  Operation = "list_contacts"
	OpUpdateContact Operation = "update_contact"
	OpSyncContacts  Operation = "sync_contacts"
	OpSearch        Operation = "search"

	OpListAttachments  Operation = "list_attachments"
	OpGetAttachment    Operation = "get_attachment"
	OpDeleteAttachment Operation = "delete_attachment"

	OpUpdateProfile Operation = "update_profile"
	OpAbout         Operation = "about"
)

// Feature names an optional request capability whose required version may
// sit above the operation's own minimum.
type Feature string

const (
	// FeatureMultiAttachment: more than one attachment on a single send.
	FeatureMultiAttachment Feature = "multiple_attachments"
	// FeatureMentions: mention spans in a message body.
	FeatureMentions Feature = "mentions"
	// FeatureQuotes: quoting an earlier message.
	FeatureQuotes Feature = "quotes"
)

// entry is one row of the table: the operation's minimum version and the
// minimum version of each feature it can carry.
type entry struct {
	min      types.APIVersion
	features map[Feature]types.APIVersion
}

// table is the single place that knows which version carries what. Adding
// an operation or a version is an edit here and nowhere else.
var table = map[Operation]entry{
	OpSendMessage: {min: types.V1, features: map[Feature]types.APIVersion{
		FeatureMultiAttachment: types.V2,
		FeatureMentions:        types.V2,
		FeatureQuotes:          types.V2,
	}},
	OpReceive:        {min: types.V1},
	OpSendReaction:   {min: types.V1},
	OpRemoveReaction: {min: types.V1},
	OpSendReceipt:    {min: types.V1},
	OpSendTyping:     {min: types.V1},
	OpStopTyping:     {min: types.V1},

	OpCreateGroup:   {min: types.V1},
	OpListGroups:    {min: types.V1},
	OpGetGroup:      {min: types.V1},
	OpUpdateGroup:   {min: types.V1},
	OpDeleteGroup:   {min: types.V1},
	OpAddMembers:    {min: types.V1},
	OpRemoveMembers: {min: types.V1},
	OpAddAdmins:     {min: types.V1},
	OpRemoveAdmins:  {min: types.V1},
	OpBlockGroup:    {min: types.V1},
	OpJoinGroup:     {min: types.V1},
	OpQuitGroup:     {min: types.V1},

	OpListIdentities: {min: types.V1},
	OpTrustIdentity:  {min: types.V1},

	OpListContacts:  {min: types.V1},
	OpUpdateContact: {min: types.V1},
	OpSyncContacts:  {min: types.V1},
	OpSearch:        {min: types.V1},

	OpListAttachments:  {min: types.V1},
	OpGetAttachment:    {min: types.V1},
	OpDeleteAttachment: {min: types.V1},

	OpUpdateProfile: {min: types.V1},
	OpAbout:         {min: types.V1},
}

// MinVersion returns the operation's minimum version. The second return is
// false for operations the table does not know.
func MinVersion(op Operation) (types.APIVersion, bool) {
	e, ok := table[op]
	return e.min, ok
}

// Requires returns the minimum version able to carry the operation with
// all the requested features.
func Requires(op Operation, features ...Feature) (types.APIVersion, bool) {
	e, ok := table[op]
	if !ok {
		return 0, false
	}
	need := e.min
	for _, f := range features {
		v, ok := e.features[f]
		if !ok {
			// A feature the operation never carries pushes past every version.
			return 0, false
		}
		if v > need {
			need = v
		}
	}
	return need, true
}

// Supports reports whether the given version can carry the operation with
// the requested features.
func Supports(v types.APIVersion, op Operation, features ...Feature) bool {
	need, ok := Requires(op, features...)
	return ok && v >= need
}

// Resolve picks the lowest server-advertised version that can carry the
// operation with the requested features. When none can, the returned error
// is an *types.UnsupportedVersionError and no request should be built.
func Resolve(
	op Operation,
	supported []types.APIVersion,
	features ...Feature,
) (types.APIVersion, error) {
	need, ok := Requires(op, features...)
	if !ok {
		return 0, &types.UnsupportedVersionError{Op: string(op), Need: 0, Supported: supported}
	}
	best := types.APIVersion(0)
	for _, v := range supported {
		if v >= need && (best == 0 || v < best) {
			best = v
		}
	}
	if best == 0 {
		return 0, &types.UnsupportedVersionError{Op: string(op), Need: need, Supported: supported}
	}
	return best, nil
}
