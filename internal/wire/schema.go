package wire

// Request and response body shapes, one struct per wire object. Field names
// follow the relay's JSON exactly; renames between versions get their own
// structs rather than conditional tags.

type sendRequestV1 struct {
	Number     string   `json:"number"`
	Message    string   `json:"message"`
	Recipients []string `json:"recipients"`
	// V1 carries at most one attachment, under the singular key.
	Base64Attachment string `json:"base64_attachment,omitempty"`
}

type sendRequestV2 struct {
	Number            string        `json:"number"`
	Message           string        `json:"message"`
	Recipients        []string      `json:"recipients"`
	Base64Attachments []string      `json:"base64_attachments,omitempty"`
	Mentions          []mentionBody `json:"mentions,omitempty"`
	QuoteTimestamp    int64         `json:"quote_timestamp,omitempty"`
	QuoteAuthor       string        `json:"quote_author,omitempty"`
	QuoteMessage      string        `json:"quote_message,omitempty"`
	QuoteMentions     []mentionBody `json:"quote_mentions,omitempty"`
}

type mentionBody struct {
	Start  int    `json:"start"`
	Length int    `json:"length"`
	Author string `json:"author"`
}

type sendResponse struct {
	Timestamp int64             `json:"timestamp"`
	Results   []recipientResult `json:"results,omitempty"`
}

// recipientResult is one per-recipient outcome inside a 2xx fan-out
// response. A 2xx envelope with failed entries is a partial success.
type recipientResult struct {
	Recipient string `json:"recipient"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// fanoutResponse is the generic 2xx envelope of batch mutations.
type fanoutResponse struct {
	Results []recipientResult `json:"results,omitempty"`
}

// errorResponse is the relay's error envelope on non-2xx statuses.
type errorResponse struct {
	Error string `json:"error"`
}

type reactionRequest struct {
	Reaction     string `json:"reaction,omitempty"`
	Recipient    string `json:"recipient"`
	TargetAuthor string `json:"target_author"`
	Timestamp    int64  `json:"timestamp"`
}

type receiptRequest struct {
	ReceiptType string `json:"receipt_type"`
	Recipient   string `json:"recipient"`
	Timestamp   int64  `json:"timestamp"`
}

type typingRequest struct {
	Recipient string `json:"recipient"`
}

type createGroupRequest struct {
	Name        string                  `json:"name"`
	Members     []string                `json:"members"`
	Description string                  `json:"description,omitempty"`
	Permissions *groupPermissionsObject `json:"permissions,omitempty"`
}

type groupPermissionsObject struct {
	AddMembers string `json:"add_members,omitempty"`
	EditGroup  string `json:"edit_group,omitempty"`
}

type createGroupResponse struct {
	ID string `json:"id"`
}

type updateGroupRequest struct {
	Name         *string `json:"name,omitempty"`
	Description  *string `json:"description,omitempty"`
	Base64Avatar string  `json:"base64_avatar,omitempty"`
}

type groupMembersRequest struct {
	Members []string `json:"members"`
}

type groupAdminsRequest struct {
	Admins []string `json:"admins"`
}

type groupObject struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Members     []string               `json:"members"`
	Admins      []string               `json:"admins"`
	Blocked     bool                   `json:"blocked"`
	InviteLink  string                 `json:"invite_link"`
	Permissions groupPermissionsObject `json:"permissions"`
}

type trustRequest struct {
	VerifiedSafetyNumber string `json:"verified_safety_number,omitempty"`
	TrustAllKnownKeys    bool   `json:"trust_all_known_keys,omitempty"`
}

type identityObject struct {
	Number         string `json:"number"`
	SafetyNumber   string `json:"safety_number"`
	Status         string `json:"status"`
	AddedTimestamp int64  `json:"added_timestamp"`
}

type contactObject struct {
	Number      string `json:"number"`
	Name        string `json:"name"`
	ProfileName string `json:"profile_name"`
	Blocked     bool   `json:"blocked"`
}

type updateContactRequest struct {
	Recipient string `json:"recipient"`
	Name      string `json:"name"`
}

type searchResult struct {
	Number     string `json:"number"`
	Registered bool   `json:"registered"`
}

type updateProfileRequest struct {
	Name         string `json:"name"`
	Base64Avatar string `json:"base64_avatar,omitempty"`
}

type aboutResponse struct {
	Versions     []string            `json:"versions"`
	Build        int                 `json:"build"`
	Mode         string              `json:"mode"`
	Capabilities map[string][]string `json:"capabilities"`
}

type receiveEnvelope struct {
	Envelope struct {
		Source     string `json:"source"`
		SourceUUID string `json:"sourceUuid"`
		Timestamp  int64  `json:"timestamp"`
		DataMessage *struct {
			Message   string `json:"message"`
			GroupInfo *struct {
				GroupID string `json:"groupId"`
			} `json:"groupInfo"`
			Attachments []struct {
				ID string `json:"id"`
			} `json:"attachments"`
		} `json:"dataMessage"`
	} `json:"envelope"`
}
