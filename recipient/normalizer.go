package recipient

import (
	"encoding/base64"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"signalrest/domain"
	"signalrest/domain/types"
)

var validate = validator.New()

// groupPrefix is the form group identifiers take on the wire.
const groupPrefix = "group."

// minGroupTokenBytes guards against mistaking short base64-looking strings
// for group tokens. Real tokens decode to well over this.
const minGroupTokenBytes = 16

// Normalize classifies a raw identifier as an E.164 phone number, an
// account UUID, or a group token and returns the tagged Recipient. It is
// side-effect-free and never reformats phone numbers: what goes in comes
// back out byte-for-byte.
func Normalize(raw string) (domain.Recipient, error) {
	r, err := normalizeAt(raw, -1)
	if err != nil {
		return domain.Recipient{}, err
	}
	return r, nil
}

// NormalizeAll normalizes element-wise, preserving input order so batch
// failure reports can map back to original positions. The first invalid
// element fails the whole call with its position attached.
func NormalizeAll(raws []string) ([]domain.Recipient, error) {
	out := make([]domain.Recipient, len(raws))
	for i, raw := range raws {
		r, err := normalizeAt(raw, i)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return out, nil
}

// NormalizePhone accepts only the phone-number form. The account's own
// number is validated with this at client construction.
func NormalizePhone(raw string) (domain.Recipient, error) {
	if err := validate.Var(raw, "e164"); err != nil {
		return domain.Recipient{}, &types.InvalidRecipientError{Raw: raw, Index: -1}
	}
	return types.PhoneNumberRecipient(raw), nil
}

// NormalizeGroup accepts only the group-token form, in any accepted spelling.
func NormalizeGroup(raw string) (domain.GroupID, error) {
	if id, ok := CanonicalGroupID(raw); ok {
		return id, nil
	}
	return "", &types.InvalidRecipientError{Raw: raw, Index: -1}
}

func normalizeAt(raw string, index int) (domain.Recipient, error) {
	switch {
	case strings.HasPrefix(raw, "+"):
		if err := validate.Var(raw, "e164"); err != nil {
			return domain.Recipient{}, &types.InvalidRecipientError{Raw: raw, Index: index}
		}
		return types.PhoneNumberRecipient(raw), nil
	case looksLikeUUID(raw):
		id, err := uuid.Parse(raw)
		if err != nil {
			return domain.Recipient{}, &types.InvalidRecipientError{Raw: raw, Index: index}
		}
		return types.AccountIDRecipient(id.String()), nil
	default:
		if id, ok := CanonicalGroupID(raw); ok {
			return types.GroupRecipient(id), nil
		}
		return domain.Recipient{}, &types.InvalidRecipientError{Raw: raw, Index: index}
	}
}

// looksLikeUUID distinguishes the UUID form from group tokens up front;
// uuid.Parse alone would also accept urn: and braced spellings we do not
// want colliding with token parsing.
func looksLikeUUID(raw string) bool {
	return len(raw) == 36 && raw[8] == '-' && raw[13] == '-' && raw[18] == '-' && raw[23] == '-'
}

// CanonicalGroupID reduces any accepted spelling of a group identifier to
// its canonical form: the "group." prefix stripped case-insensitively,
// padding dropped, and the standard base64 alphabet mapped to URL-safe.
// Equality on GroupID is therefore format-insensitive.
func CanonicalGroupID(raw string) (domain.GroupID, bool) {
	token := raw
	if len(token) >= len(groupPrefix) && strings.EqualFold(token[:len(groupPrefix)], groupPrefix) {
		token = token[len(groupPrefix):]
	}
	token = strings.TrimRight(token, "=")
	token = strings.NewReplacer("+", "-", "/", "_").Replace(token)
	if token == "" {
		return "", false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil || len(decoded) < minGroupTokenBytes {
		return "", false
	}
	return domain.GroupID(token), true
}
