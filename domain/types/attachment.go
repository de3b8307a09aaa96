package types

// Attachment is either a reference to an attachment the relay already
// stores (ID set) or raw bytes to upload inline with a send (Data set).
// ContentType and Filename refine how inline bytes are presented; when
// ContentType is empty it is detected from the bytes at build time.
type Attachment struct {
	ID          AttachmentID
	Data        []byte
	ContentType string
	Filename    string
}

// IsRef reports whether the attachment references relay-stored content.
func (a Attachment) IsRef() bool { return a.ID != "" && a.Data == nil }
