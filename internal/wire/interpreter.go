package wire

import (
	"encoding/json"
	"net/http"

	"signalrest/domain/types"
)

// KindForStatus maps an HTTP status onto the error taxonomy. Only non-2xx
// statuses are classified; 2xx responses never reach this.
func KindForStatus(status int) types.ErrorKind {
	switch {
	case status == http.StatusBadRequest:
		return types.ErrorInvalidRequest
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return types.ErrorAuth
	case status == http.StatusNotFound:
		return types.ErrorNotFound
	case status == http.StatusConflict:
		return types.ErrorConflict
	case status == http.StatusTooManyRequests:
		return types.ErrorRateLimited
	case status >= 500:
		return types.ErrorRemoteUnavailable
	default:
		return types.ErrorUnknownRemote
	}
}

// errorMessage pulls the relay's error envelope out of a non-2xx body,
// falling back to the standard status text when the body has none.
func errorMessage(resp types.WireResponse) string {
	var envelope errorResponse
	if err := json.Unmarshal(resp.Body, &envelope); err == nil && envelope.Error != "" {
		return envelope.Error
	}
	return http.StatusText(resp.Status)
}

func ok(status int) bool { return status/100 == 2 }

// failure classifies a non-2xx response as a Result failure.
func failure[T any](resp types.WireResponse) types.Result[T] {
	return types.Failed[T](KindForStatus(resp.Status), errorMessage(resp))
}

// remoteError classifies a non-2xx response for read operations, which
// return plain values and carry remote failures as errors.
func remoteError(resp types.WireResponse) error {
	return &types.RemoteError{
		Kind:    KindForStatus(resp.Status),
		Status:  resp.Status,
		Message: errorMessage(resp),
	}
}

// Check interprets a response whose only payload is its status.
func Check(resp types.WireResponse) error {
	if !ok(resp.Status) {
		return remoteError(resp)
	}
	return nil
}

// Decode interprets a 2xx JSON body into T. An empty body decodes to the
// zero value.
func Decode[T any](resp types.WireResponse) (T, error) {
	var out T
	if !ok(resp.Status) {
		return out, remoteError(resp)
	}
	if len(resp.Body) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return out, err
	}
	return out, nil
}

// splitResults partitions per-recipient outcomes against the caller's
// original recipient order. Failed entries keep the index the recipient had
// in the original sequence; entries the relay reports for recipients we
// never sent keep index -1 rather than being dropped.
func splitResults(
	recipients []types.Recipient,
	results []recipientResult,
) (delivered []types.Recipient, failures []types.RecipientFailure) {
	index := make(map[string]int, len(recipients))
	for i, r := range recipients {
		index[r.Wire()] = i
	}
	for _, res := range results {
		i, known := index[res.Recipient]
		if !known {
			i = -1
		}
		if res.Success {
			if known {
				delivered = append(delivered, recipients[i])
			}
			continue
		}
		var r types.Recipient
		if known {
			r = recipients[i]
		}
		failures = append(failures, types.RecipientFailure{
			Index:     i,
			Recipient: r,
			Reason: types.FailureReason{
				Kind:    types.ErrorUnknownRemote,
				Message: res.Error,
			},
		})
	}
	return delivered, failures
}

// InterpretSend classifies a send response. A 2xx without per-recipient
// results means the relay accepted the message for everyone; a 2xx with
// failed entries is a partial success whose payload still reflects the
// recipients that got the message.
func InterpretSend(
	recipients []types.Recipient,
	resp types.WireResponse,
) types.Result[types.SendInfo] {
	if !ok(resp.Status) {
		return failure[types.SendInfo](resp)
	}

	var envelope sendResponse
	if len(resp.Body) > 0 {
		// A malformed 2xx body still means the send went through; the
		// timestamp is just unknown.
		_ = json.Unmarshal(resp.Body, &envelope)
	}

	if len(envelope.Results) == 0 {
		return types.Success(types.SendInfo{
			Timestamp: envelope.Timestamp,
			Delivered: recipients,
		})
	}

	delivered, failures := splitResults(recipients, envelope.Results)
	info := types.SendInfo{Timestamp: envelope.Timestamp, Delivered: delivered}
	if len(failures) == 0 {
		return types.Success(info)
	}
	return types.Partial(info, failures)
}

// InterpretFanout classifies a batch mutation response the same way as a
// send, but with no payload beyond the per-recipient outcomes.
func InterpretFanout(
	recipients []types.Recipient,
	resp types.WireResponse,
) types.Result[types.Unit] {
	if !ok(resp.Status) {
		return failure[types.Unit](resp)
	}
	var envelope fanoutResponse
	if len(resp.Body) > 0 {
		_ = json.Unmarshal(resp.Body, &envelope)
	}
	_, failures := splitResults(recipients, envelope.Results)
	if len(failures) == 0 {
		return types.Success(types.Unit{})
	}
	return types.Partial(types.Unit{}, failures)
}

// InterpretUnit classifies a single-target mutation response: any 2xx is
// success, anything else is a classified failure.
func InterpretUnit(resp types.WireResponse) types.Result[types.Unit] {
	if !ok(resp.Status) {
		return failure[types.Unit](resp)
	}
	return types.Success(types.Unit{})
}
