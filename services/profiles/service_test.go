package profiles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/domain/types"
	"signalrest/services/profiles"
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

func TestUpdate(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := profiles.New(account, []types.APIVersion{types.V1}, ft)

	res, err := svc.Update(context.Background(), "Ada", []byte("avatar-bytes"))
	require.NoError(t, err)
	require.True(t, res.Ok())

	req := ft.requests[0]
	require.Equal(t, http.MethodPut, req.Method)
	require.Equal(t, "/v1/profiles/"+account, req.Path)
	var body map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &body))
	require.Equal(t, "Ada", body["name"])
	require.Equal(t, "YXZhdGFyLWJ5dGVz", body["base64_avatar"])
}

func TestUpdate_NameOnly(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := profiles.New(account, []types.APIVersion{types.V1}, ft)

	res, err := svc.Update(context.Background(), "Ada", nil)
	require.NoError(t, err)
	require.True(t, res.Ok())

	var body map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &body))
	require.Equal(t, "Ada", body["name"])
	require.NotContains(t, body, "base64_avatar")
}
