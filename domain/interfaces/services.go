package interfaces

import (
	"context"

	"signalrest/domain/types"
)

// MessageService sends and drains messages, reactions, receipts and typing
// indicators. Mutations return a Result; partial failure across a fan-out
// is a normal outcome, not an error.
type MessageService interface {
	Send(
		ctx context.Context,
		body string,
		to []string,
		opts types.SendOptions,
	) (types.Result[types.SendInfo], error)
	Receive(ctx context.Context) ([]types.ReceivedMessage, error)

	SendReaction(
		ctx context.Context,
		ref types.MessageRef,
		emoji string,
	) (types.Result[types.Unit], error)
	RemoveReaction(ctx context.Context, ref types.MessageRef) (types.Result[types.Unit], error)

	SendReceipt(
		ctx context.Context,
		ref types.MessageRef,
		kind types.ReceiptKind,
	) (types.Result[types.Unit], error)

	SendTyping(ctx context.Context, to string) (types.Result[types.Unit], error)
	StopTyping(ctx context.Context, to string) (types.Result[types.Unit], error)
}

// GroupService manages group conversations. Reads always re-fetch from the
// relay; nothing is cached. Every mutation requires a group identifier and
// fails fast locally when it is missing.
type GroupService interface {
	Create(
		ctx context.Context,
		name string,
		members []string,
		opts types.CreateGroupOptions,
	) (types.Result[types.GroupID], error)
	List(ctx context.Context) ([]types.Group, error)
	Get(ctx context.Context, id string) (types.Group, error)
	Update(ctx context.Context, id string, patch types.GroupPatch) (types.Result[types.Unit], error)
	Delete(ctx context.Context, id string) (types.Result[types.Unit], error)

	AddMembers(ctx context.Context, id string, members []string) (types.Result[types.Unit], error)
	RemoveMembers(ctx context.Context, id string, members []string) (types.Result[types.Unit], error)
	AddAdmins(ctx context.Context, id string, members []string) (types.Result[types.Unit], error)
	RemoveAdmins(ctx context.Context, id string, members []string) (types.Result[types.Unit], error)

	Block(ctx context.Context, id string) (types.Result[types.Unit], error)
	Join(ctx context.Context, id string) (types.Result[types.Unit], error)
	Quit(ctx context.Context, id string) (types.Result[types.Unit], error)
}

// IdentityService lists remote identities and raises their trust level.
// Trust only ever moves up; no regression transition is exposed.
type IdentityService interface {
	List(ctx context.Context) ([]types.Identity, error)
	Trust(
		ctx context.Context,
		recipient string,
		fingerprint types.Fingerprint,
		opts types.TrustOptions,
	) (types.Result[types.Identity], error)
}

// ContactService reads and edits the account's contact list and checks
// which numbers are registered with the service.
type ContactService interface {
	List(ctx context.Context) ([]types.Contact, error)
	Update(ctx context.Context, recipient string, name string) (types.Result[types.Unit], error)
	Sync(ctx context.Context) (types.Result[types.Unit], error)
	Search(ctx context.Context, numbers []string) (map[types.Recipient]bool, error)
}

// AttachmentService manages attachments stored by the relay.
type AttachmentService interface {
	List(ctx context.Context) ([]types.AttachmentID, error)
	Get(ctx context.Context, id string) ([]byte, error)
	Delete(ctx context.Context, id string) (types.Result[types.Unit], error)
}

// ProfileService updates the account's own profile.
type ProfileService interface {
	Update(ctx context.Context, name string, avatar []byte) (types.Result[types.Unit], error)
}
