package domain

import (
	interfaces "signalrest/domain/interfaces"
	types "signalrest/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Recipient     = types.Recipient
	RecipientKind = types.RecipientKind
	GroupID       = types.GroupID
	Fingerprint   = types.Fingerprint
	AttachmentID  = types.AttachmentID
	Unit          = types.Unit

	APIVersion = types.APIVersion

	Mention         = types.Mention
	Quote           = types.Quote
	MessageRef      = types.MessageRef
	SendInfo        = types.SendInfo
	ReceiptKind     = types.ReceiptKind
	ReceivedMessage = types.ReceivedMessage
	Attachment      = types.Attachment

	Group            = types.Group
	GroupPatch       = types.GroupPatch
	GroupPermission  = types.GroupPermission
	GroupPermissions = types.GroupPermissions

	Identity   = types.Identity
	TrustLevel = types.TrustLevel
	Contact    = types.Contact
	About      = types.About

	SendOptions        = types.SendOptions
	CreateGroupOptions = types.CreateGroupOptions
	TrustOptions       = types.TrustOptions

	ErrorKind        = types.ErrorKind
	FailureReason    = types.FailureReason
	RecipientFailure = types.RecipientFailure
	ResultStatus     = types.ResultStatus

	InvalidRecipientError   = types.InvalidRecipientError
	MissingGroupIDError     = types.MissingGroupIDError
	UnsupportedVersionError = types.UnsupportedVersionError
	RemoteError             = types.RemoteError

	WireRequest  = types.WireRequest
	WireResponse = types.WireResponse
)

// Result is re-exported generically; aliases cannot rename a parameterized
// instantiation, so the common payloads read as domain.Result[domain.Unit].
type Result[T any] = types.Result[T]

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	Transport         = interfaces.Transport
	MessageService    = interfaces.MessageService
	GroupService      = interfaces.GroupService
	IdentityService   = interfaces.IdentityService
	ContactService    = interfaces.ContactService
	AttachmentService = interfaces.AttachmentService
	ProfileService    = interfaces.ProfileService
)

// Constant re-exports, so callers rarely need the types subpackage directly.
const (
	RecipientPhoneNumber = types.RecipientPhoneNumber
	RecipientAccountID   = types.RecipientAccountID
	RecipientGroupID     = types.RecipientGroupID

	V1 = types.V1
	V2 = types.V2

	Untrusted         = types.Untrusted
	TrustedUnverified = types.TrustedUnverified
	TrustedVerified   = types.TrustedVerified

	StatusSuccess = types.StatusSuccess
	StatusPartial = types.StatusPartial
	StatusFailure = types.StatusFailure

	ErrorAuth              = types.ErrorAuth
	ErrorNotFound          = types.ErrorNotFound
	ErrorConflict          = types.ErrorConflict
	ErrorRateLimited       = types.ErrorRateLimited
	ErrorRemoteUnavailable = types.ErrorRemoteUnavailable
	ErrorInvalidRequest    = types.ErrorInvalidRequest
	ErrorUnknownRemote     = types.ErrorUnknownRemote

	ReceiptDelivered = types.ReceiptDelivered
	ReceiptRead      = types.ReceiptRead
	ReceiptViewed    = types.ReceiptViewed

	PermissionEveryMember = types.PermissionEveryMember
	PermissionOnlyAdmins  = types.PermissionOnlyAdmins
)
