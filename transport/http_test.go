package transport_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"signalrest/domain/types"
	"signalrest/transport"
)

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := transport.New(transport.Config{})
	require.Error(t, err)

	_, err = transport.New(transport.Config{BaseURL: "not a url"})
	require.Error(t, err)

	_, err = transport.New(transport.Config{BaseURL: "/just/a/path"})
	require.Error(t, err)

	tr, err := transport.New(transport.Config{BaseURL: "http://localhost:8080/"})
	require.NoError(t, err)
	require.NotNil(t, tr)
}

func TestExecute_PassesRequestThrough(t *testing.T) {
	var got *http.Request
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"timestamp": 1}`))
	}))
	defer server.Close()

	tr, err := transport.New(transport.Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := tr.Execute(context.Background(), types.WireRequest{
		Method:  http.MethodPost,
		Path:    "/v2/send",
		Body:    []byte(`{"message":"hi"}`),
		Version: types.V2,
	})
	require.NoError(t, err)
	require.Equal(t, 201, resp.Status)
	require.JSONEq(t, `{"timestamp": 1}`, string(resp.Body))

	require.Equal(t, http.MethodPost, got.Method)
	require.Equal(t, "/v2/send", got.URL.Path)
	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.JSONEq(t, `{"message":"hi"}`, string(gotBody))
}

func TestExecute_EncodesQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	tr, err := transport.New(transport.Config{BaseURL: server.URL})
	require.NoError(t, err)

	query := url.Values{}
	query.Set("number", "+15555550100")
	query.Set("numbers", "+15555550101,+15555550102")
	_, err = tr.Execute(context.Background(), types.WireRequest{
		Method:  http.MethodGet,
		Path:    "/v1/search",
		Query:   query,
		Version: types.V1,
	})
	require.NoError(t, err)
	require.Equal(t, "+15555550100", gotQuery.Get("number"))
	require.Equal(t, "+15555550101,+15555550102", gotQuery.Get("numbers"))
}

func TestExecute_BasicAuth(t *testing.T) {
	var user, pass string
	var set bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, set = r.BasicAuth()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tr, err := transport.New(transport.Config{
		BaseURL: server.URL,
		Auth:    &transport.BasicAuth{User: "signal", Password: "hunter2"},
	})
	require.NoError(t, err)

	_, err = tr.Execute(context.Background(), types.WireRequest{
		Method:  http.MethodGet,
		Path:    "/v1/about",
		Version: types.V1,
	})
	require.NoError(t, err)
	require.True(t, set)
	require.Equal(t, "signal", user)
	require.Equal(t, "hunter2", pass)
}

func TestExecute_NonOKStatusIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid number"}`))
	}))
	defer server.Close()

	tr, err := transport.New(transport.Config{BaseURL: server.URL})
	require.NoError(t, err)

	resp, err := tr.Execute(context.Background(), types.WireRequest{
		Method:  http.MethodPost,
		Path:    "/v2/send",
		Body:    []byte(`{}`),
		Version: types.V2,
	})
	require.NoError(t, err)
	require.Equal(t, 400, resp.Status)
	require.JSONEq(t, `{"error":"invalid number"}`, string(resp.Body))
}

func TestExecute_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	tr, err := transport.New(transport.Config{BaseURL: server.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = tr.Execute(ctx, types.WireRequest{
		Method:  http.MethodGet,
		Path:    "/v1/about",
		Version: types.V1,
	})
	require.Error(t, err)
}
