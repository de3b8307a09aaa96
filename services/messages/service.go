package messages

import (
	"context"

	"signalrest/domain"
	"signalrest/domain/types"
	"signalrest/internal/capability"
	"signalrest/internal/wire"
	"signalrest/recipient"
)

// Service is the message facade: sends, reactions, receipts, typing
// indicators, and draining inbound envelopes. Every method follows the same
// skeleton — normalize, resolve a version, build, one transport call,
// interpret — and holds no state between calls.
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

// Send delivers one message to every recipient in a single request; the
// relay fans out server-side. The version is the lowest one able to carry
// the requested options: a plain text message goes out as v1 against an old
// relay, while multiple attachments, mentions, or a quote require v2 and
// fail fast with an UnsupportedVersionError when the server lacks it.
func (s *Service) Send(
	ctx context.Context,
	body string,
	to []string,
	opts types.SendOptions,
) (types.Result[types.SendInfo], error) {
	recipients, err := recipient.NormalizeAll(to)
	if err != nil {
		return types.Result[types.SendInfo]{}, err
	}
	version, err := capability.Resolve(capability.OpSendMessage, s.versions, wire.SendFeatures(opts)...)
	if err != nil {
		return types.Result[types.SendInfo]{}, err
	}
	req, err := wire.BuildSend(s.number, body, recipients, opts, version)
	if err != nil {
		return types.Result[types.SendInfo]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.SendInfo]{}, err
	}
	return wire.InterpretSend(recipients, resp), nil
}

// Receive drains pending envelopes for the account.
func (s *Service) Receive(ctx context.Context) ([]types.ReceivedMessage, error) {
	version, err := capability.Resolve(capability.OpReceive, s.versions)
	if err != nil {
		return nil, err
	}
	req, err := wire.BuildReceive(s.number, version)
	if err != nil {
		return nil, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return nil, err
	}
	return wire.DecodeReceived(resp)
}

// reactionTarget normalizes the two identifiers of a message reference.
// Author defaults to the conversation for one-to-one chats.
func (s *Service) reactionTarget(ref types.MessageRef) (conversation, author domain.Recipient, err error) {
	conversation, err = recipient.Normalize(ref.Conversation)
	if err != nil {
		return domain.Recipient{}, domain.Recipient{}, err
	}
	rawAuthor := ref.Author
	if rawAuthor == "" {
		rawAuthor = ref.Conversation
	}
	author, err = recipient.Normalize(rawAuthor)
	if err != nil {
		return domain.Recipient{}, domain.Recipient{}, err
	}
	return conversation, author, nil
}

// SendReaction attaches an emoji reaction to the referenced message.
func (s *Service) SendReaction(
	ctx context.Context,
	ref types.MessageRef,
	emoji string,
) (types.Result[types.Unit], error) {
	conversation, author, err := s.reactionTarget(ref)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(capability.OpSendReaction, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildSendReaction(s.number, conversation, author, ref.Timestamp, emoji, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// RemoveReaction withdraws this account's reaction from the referenced message.
func (s *Service) RemoveReaction(
	ctx context.Context,
	ref types.MessageRef,
) (types.Result[types.Unit], error) {
	conversation, author, err := s.reactionTarget(ref)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(capability.OpRemoveReaction, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildRemoveReaction(s.number, conversation, author, ref.Timestamp, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// SendReceipt marks the referenced message with a receipt. The read and
// viewed kinds are passed through unchanged; the relay owns their meaning.
func (s *Service) SendReceipt(
	ctx context.Context,
	ref types.MessageRef,
	kind types.ReceiptKind,
) (types.Result[types.Unit], error) {
	conversation, err := recipient.Normalize(ref.Conversation)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(capability.OpSendReceipt, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	req, err := wire.BuildSendReceipt(s.number, conversation, ref.Timestamp, kind, version)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// SendTyping shows a typing indicator in the given conversation.
func (s *Service) SendTyping(ctx context.Context, to string) (types.Result[types.Unit], error) {
	return s.typing(ctx, to, capability.OpSendTyping)
}

// StopTyping hides this account's typing indicator in the given conversation.
func (s *Service) StopTyping(ctx context.Context, to string) (types.Result[types.Unit], error) {
	return s.typing(ctx, to, capability.OpStopTyping)
}

func (s *Service) typing(
	ctx context.Context,
	to string,
	op capability.Operation,
) (types.Result[types.Unit], error) {
	target, err := recipient.Normalize(to)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	version, err := capability.Resolve(op, s.versions)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	var req types.WireRequest
	if op == capability.OpSendTyping {
		req, err = wire.BuildSendTyping(s.number, target, version)
	} else {
		req, err = wire.BuildStopTyping(s.number, target, version)
	}
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	resp, err := s.transport.Execute(ctx, req)
	if err != nil {
		return types.Result[types.Unit]{}, err
	}
	return wire.InterpretUnit(resp), nil
}

// Compile-time assertion that Service implements domain.MessageService.
var _ domain.MessageService = (*Service)(nil)
