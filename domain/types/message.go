package types

// Mention marks a span of a message body that names another account.
type Mention struct {
	// Start and Length locate the span in the body, in UTF-16 code units as
	// the relay counts them.
	Start  int
	Length int
	// Author is the mentioned account, raw; normalized by the facade.
	Author string
}

// Quote references an earlier message that a new message replies to.
type Quote struct {
	// Timestamp is the quoted message's origin timestamp, which together
	// with the author identifies it.
	Timestamp int64
	// Author is the quoted message's author, raw; normalized by the facade.
	Author string
	// Message is the quoted body, echoed for display.
	Message  string
	Mentions []Mention
}

// MessageRef identifies an already-delivered message for reactions and
// receipts: the conversation it lives in, its author, and its timestamp.
// Identifiers are raw; the facade normalizes them before building requests.
type MessageRef struct {
	// Conversation is the chat holding the message: a contact or a group.
	Conversation string
	// Author is the account that sent the message. Empty means the
	// conversation partner for one-to-one chats.
	Author string
	// Timestamp is the message's origin timestamp.
	Timestamp int64
}

// SendInfo is the payload of a successful or partially successful send.
type SendInfo struct {
	// Timestamp is the origin timestamp the relay assigned to the message.
	Timestamp int64
	// Delivered lists the recipients the relay accepted the message for, in
	// the caller's original order.
	Delivered []Recipient
}

// ReceiptKind labels a receipt. The relay distinguishes read from viewed;
// the difference is carried through unchanged rather than interpreted here.
type ReceiptKind string

const (
	ReceiptDelivered ReceiptKind = "delivered"
	ReceiptRead      ReceiptKind = "read"
	ReceiptViewed    ReceiptKind = "viewed"
)

// ReceivedMessage is one inbound envelope drained from the relay.
type ReceivedMessage struct {
	// Source is the sending account.
	Source Recipient
	// Timestamp is the message's origin timestamp.
	Timestamp int64
	// Body is the plaintext body; empty for receipts and typing events.
	Body string
	// Group is set when the message was sent to a group conversation.
	Group GroupID
	// Attachments lists identifiers of attachments stored by the relay.
	Attachments []AttachmentID
}
