package groups_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/domain/types"
	"signalrest/services/groups"
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

const (
	account = "+15555550100"
	// base64 of "hello world group!!" without padding.
	groupToken = "aGVsbG8gd29ybGQgZ3JvdXAhIQ"
)

func bothVersions() []types.APIVersion {
	return []types.APIVersion{types.V1, types.V2}
}

func TestCreate(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 201,
		Body:   []byte(`{"id": "group.` + groupToken + `"}`),
	}}}
	svc := groups.New(account, bothVersions(), ft)

	res, err := svc.Create(context.Background(), "Friends", []string{"+15555550101"}, types.CreateGroupOptions{
		Description: "close ones",
	})
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Equal(t, types.GroupID(groupToken), res.Value)

	require.Equal(t, http.MethodPost, ft.requests[0].Method)
	require.Equal(t, "/v1/groups/"+account, ft.requests[0].Path)
	var body map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &body))
	require.Equal(t, "Friends", body["name"])
	require.Equal(t, "close ones", body["description"])
}

func TestCreate_RemoteRejectionIsAFailedResult(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 409,
		Body:   []byte(`{"error":"group already exists"}`),
	}}}
	svc := groups.New(account, bothVersions(), ft)

	res, err := svc.Create(context.Background(), "Friends", nil, types.CreateGroupOptions{})
	require.NoError(t, err)
	require.True(t, res.IsFailure())
	require.Equal(t, types.ErrorConflict, res.Reason.Kind)
	require.Equal(t, "group already exists", res.Reason.Message)
}

func TestMutations_MissingGroupIDFailsBeforeTransport(t *testing.T) {
	ft := &fakeTransport{}
	svc := groups.New(account, bothVersions(), ft)
	ctx := context.Background()

	calls := []func() error{
		func() error { _, err := svc.Get(ctx, ""); return err },
		func() error { _, err := svc.Update(ctx, "", types.GroupPatch{}); return err },
		func() error { _, err := svc.Delete(ctx, ""); return err },
		func() error { _, err := svc.AddMembers(ctx, "", []string{"+15555550101"}); return err },
		func() error { _, err := svc.RemoveAdmins(ctx, "", []string{"+15555550101"}); return err },
		func() error { _, err := svc.Block(ctx, ""); return err },
		func() error { _, err := svc.Join(ctx, ""); return err },
		func() error { _, err := svc.Quit(ctx, ""); return err },
	}
	for i, call := range calls {
		var missing *types.MissingGroupIDError
		require.ErrorAs(t, call(), &missing, i)
	}
	require.Empty(t, ft.requests, "a missing group identifier must be caught before any I/O")
}

func TestGet_AcceptsAnyGroupIDSpelling(t *testing.T) {
	body := []byte(`{"id": "group.` + groupToken + `", "name": "Friends"}`)
	for _, spelling := range []string{
		groupToken,
		"group." + groupToken,
		"GROUP." + groupToken,
		groupToken + "==",
	} {
		ft := &fakeTransport{responses: []types.WireResponse{{Status: 200, Body: body}}}
		svc := groups.New(account, bothVersions(), ft)

		g, err := svc.Get(context.Background(), spelling)
		require.NoError(t, err, spelling)
		require.Equal(t, types.GroupID(groupToken), g.ID)
		require.Equal(t, "/v1/groups/"+account+"/group."+groupToken, ft.requests[0].Path, spelling)
	}
}

func TestGet_RemoteNotFound(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 404,
		Body:   []byte(`{"error":"no such group"}`),
	}}}
	svc := groups.New(account, bothVersions(), ft)

	_, err := svc.Get(context.Background(), groupToken)
	var remote *types.RemoteError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, types.ErrorNotFound, remote.Kind)
}

func TestUpdate_OnlyPatchedFieldsOnTheWire(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := groups.New(account, bothVersions(), ft)

	name := "New name"
	res, err := svc.Update(context.Background(), groupToken, types.GroupPatch{Name: &name})
	require.NoError(t, err)
	require.True(t, res.Ok())

	var body map[string]any
	require.NoError(t, json.Unmarshal(ft.requests[0].Body, &body))
	require.Equal(t, "New name", body["name"])
	require.NotContains(t, body, "description")
	require.NotContains(t, body, "base64_avatar")
}

func TestAddMembers_PartialFanout(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 200,
		Body: []byte(`{"results": [
			{"recipient": "+15555550102", "success": false, "error": "unregistered"}
		]}`),
	}}}
	svc := groups.New(account, bothVersions(), ft)

	res, err := svc.AddMembers(context.Background(), groupToken, []string{"+15555550101", "+15555550102"})
	require.NoError(t, err)
	require.True(t, res.IsPartial())
	require.Len(t, res.Failures, 1)
	require.Equal(t, 1, res.Failures[0].Index)

	require.Equal(t, http.MethodPost, ft.requests[0].Method)
	require.Equal(t, "/v1/groups/"+account+"/group."+groupToken+"/members", ft.requests[0].Path)
}

func TestRemoveMembers_UsesDelete(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}}}
	svc := groups.New(account, bothVersions(), ft)

	res, err := svc.RemoveMembers(context.Background(), groupToken, []string{"+15555550101"})
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Equal(t, http.MethodDelete, ft.requests[0].Method)
}

func TestQuitBlockJoinPaths(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{Status: 204}, {Status: 204}, {Status: 204}}}
	svc := groups.New(account, bothVersions(), ft)
	ctx := context.Background()
	base := "/v1/groups/" + account + "/group." + groupToken

	_, err := svc.Block(ctx, groupToken)
	require.NoError(t, err)
	_, err = svc.Join(ctx, groupToken)
	require.NoError(t, err)
	_, err = svc.Quit(ctx, groupToken)
	require.NoError(t, err)

	require.Equal(t, base+"/block", ft.requests[0].Path)
	require.Equal(t, base+"/join", ft.requests[1].Path)
	require.Equal(t, base+"/quit", ft.requests[2].Path)
}
