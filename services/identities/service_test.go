package identities_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/domain/types"
	"signalrest/services/identities"
)

type fakeTransport struct {
	requests  []types.WireRequest
	responses []types.WireResponse
}

func (f *fakeTransport) Execute(_ context.Context, req types.WireRequest) (types.WireResponse, error) {
	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return types.WireResponse{Status: http.StatusNoContent}, nil
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return resp, nil
}

const account = "+15555550100"

func bothVersions() []types.APIVersion {
	return []types.APIVersion{types.V1, types.V2}
}

func TestList(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 200,
		Body: []byte(`[
			{"number": "+15555550101", "safety_number": "11111", "status": "UNTRUSTED"},
			{"number": "+15555550102", "safety_number": "22222", "status": "TRUSTED_VERIFIED"}
		]`),
	}}}
	svc := identities.New(account, bothVersions(), ft)

	ids, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, 2)
	require.Equal(t, types.Untrusted, ids[0].Trust)
	require.Equal(t, types.TrustedVerified, ids[1].Trust)
	require.Equal(t, "/v1/identities/"+account, ft.requests[0].Path)
}

func TestTrust_VerifiesFingerprint(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := identities.New(account, bothVersions(), ft)

	res, err := svc.Trust(context.Background(), "+15555550101", "12345 67890", types.TrustOptions{})
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Equal(t, types.TrustedVerified, res.Value.Trust)
	require.Equal(t, types.Fingerprint("12345 67890"), res.Value.Fingerprint)

	require.Equal(t, http.MethodPut, ft.requests[0].Method)
	var body map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &body))
	require.Equal(t, "12345 67890", body["verified_safety_number"])
	require.NotContains(t, body, "trust_all_known_keys")
}

func TestTrust_AllKnownStopsAtUnverified(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := identities.New(account, bothVersions(), ft)

	res, err := svc.Trust(context.Background(), "+15555550101", "", types.TrustOptions{TrustAllKnown: true})
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Equal(t, types.TrustedUnverified, res.Value.Trust)

	var body map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &body))
	require.Equal(t, true, body["trust_all_known_keys"])
	require.NotContains(t, body, "verified_safety_number")
}

func TestTrust_RemoteRejectionIsAFailedResult(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 400,
		Body:   []byte(`{"error":"safety number mismatch"}`),
	}}}
	svc := identities.New(account, bothVersions(), ft)

	res, err := svc.Trust(context.Background(), "+15555550101", "wrong", types.TrustOptions{})
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	require.Equal(t, types.ErrorInvalidRequest, res.Reason.Kind)
	require.Equal(t, "safety number mismatch", res.Reason.Message)
}

func TestTrust_InvalidRecipientFailsBeforeTransport(t *testing.T) {
	ft := &fakeTransport{}
	svc := identities.New(account, bothVersions(), ft)

	_, err := svc.Trust(context.Background(), "nonsense", "1", types.TrustOptions{})
	var invalid *types.InvalidRecipientError
	require.ErrorAs(t, err, &invalid)
	require.Empty(t, ft.requests)
}
