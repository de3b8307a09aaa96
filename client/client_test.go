package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/client"
	"signalrest/domain"
	"signalrest/domain/types"
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

func TestNew_RejectsBadNumber(t *testing.T) {
	_, err := client.New(client.Config{ServerURL: "http://localhost:8080", Number: "15555550100"})
	var invalid *domain.InvalidRecipientError
	require.ErrorAs(t, err, &invalid)

	_, err = client.New(client.Config{ServerURL: "http://localhost:8080"})
	require.Error(t, err)
}

func TestNew_RejectsBadServerURL(t *testing.T) {
	_, err := client.New(client.Config{ServerURL: "", Number: "+15555550100"})
	require.Error(t, err)
}

func TestNew_WiresEveryFacade(t *testing.T) {
	c, err := client.New(client.Config{
		Number:    "+15555550100",
		Transport: &fakeTransport{},
	})
	require.NoError(t, err)
	require.Equal(t, "+15555550100", c.Number())
	require.NotNil(t, c.Messages)
	require.NotNil(t, c.Groups)
	require.NotNil(t, c.Identities)
	require.NotNil(t, c.Contacts)
	require.NotNil(t, c.Attachments)
	require.NotNil(t, c.Profiles)
}

func TestAbout(t *testing.T) {
	ft := &fakeTransport{responses: []types.WireResponse{{
		Status: 200,
		Body:   []byte(`{"versions": ["v1", "v2"], "build": 2, "mode": "normal"}`),
	}}}
	c, err := client.New(client.Config{Number: "+15555550100", Transport: ft})
	require.NoError(t, err)

	about, err := c.About(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.APIVersion{domain.V1, domain.V2}, about.Versions)
	require.Equal(t, "normal", about.Mode)
	require.Equal(t, "/v1/about", ft.requests[0].Path)
}

func TestPin_RestrictsVersions(t *testing.T) {
	ft := &fakeTransport{}
	c, err := client.New(client.Config{Number: "+15555550100", Transport: ft})
	require.NoError(t, err)

	old := c.Pin(domain.V1)
	_, err = old.Messages.Send(context.Background(), "q", []string{"+15555550101"}, domain.SendOptions{
		Mentions: []domain.Mention{{Start: 0, Length: 1, Author: "+15555550101"}},
	})
	var unsupported *domain.UnsupportedVersionError
	require.ErrorAs(t, err, &unsupported)
	require.Empty(t, ft.requests)

	// The original client is untouched and still speaks v2.
	ft.responses = []types.WireResponse{{Status: 201}}
	res, err := c.Messages.Send(context.Background(), "q", []string{"+15555550101"}, domain.SendOptions{
		Mentions: []domain.Mention{{Start: 0, Length: 1, Author: "+15555550101"}},
	})
	require.NoError(t, err)
	require.True(t, res.Ok())
	require.Equal(t, "/v2/send", ft.requests[0].Path)
}
