package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"signalrest/domain"
	"signalrest/domain/types"
)

// BasicAuth carries credentials for relays deployed behind HTTP basic auth.
type BasicAuth struct {
	User     string
	Password string
}

// Config holds construction options for the HTTP transport.
type Config struct {
	// BaseURL is the relay's base URL, e.g. "http://localhost:8080".
	BaseURL string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger receives request debug lines. If nil, slog.Default() is used.
	Logger *slog.Logger
	// Auth enables HTTP basic authentication when non-nil.
	Auth *BasicAuth
}

// HTTP executes wire requests against the relay over HTTP. It reports any
// status the relay produced as a response, not an error: classification
// belongs to the interpreter. Its errors mean the call itself failed.
type HTTP struct {
	base   string
	client *http.Client
	logger *slog.Logger
	auth   *BasicAuth
}

// New validates the base URL and returns the transport.
func New(config Config) (*HTTP, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("transport: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("transport: invalid BaseURL %q", config.BaseURL)
	}

	client := config.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &HTTP{
		base:   strings.TrimRight(config.BaseURL, "/"),
		client: client,
		logger: logger,
		auth:   config.Auth,
	}, nil
}

// CloseIdleConnections closes idle connections in the underlying client's
// pool. Call after a network disruption to drop poisoned connections.
func (t *HTTP) CloseIdleConnections() {
	t.client.CloseIdleConnections()
}

// Execute issues one request and returns whatever came back.
func (t *HTTP) Execute(ctx context.Context, request types.WireRequest) (types.WireResponse, error) {
	target := t.base + request.Path
	if len(request.Query) > 0 {
		target += "?" + request.Query.Encode()
	}

	var body io.Reader
	if request.Body != nil {
		body = bytes.NewReader(request.Body)
	}
	req, err := http.NewRequestWithContext(ctx, request.Method, target, body)
	if err != nil {
		return types.WireResponse{}, err
	}
	if request.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.auth != nil {
		req.SetBasicAuth(t.auth.User, t.auth.Password)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return types.WireResponse{}, fmt.Errorf("relay %s %s: %w", request.Method, request.Path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.WireResponse{}, fmt.Errorf("relay %s %s: read body: %w", request.Method, request.Path, err)
	}

	t.logger.Debug("relay request",
		"method", request.Method,
		"path", request.Path,
		"api", request.Version.String(),
		"status", resp.StatusCode,
	)
	return types.WireResponse{Status: resp.StatusCode, Body: payload}, nil
}

var _ domain.Transport = (*HTTP)(nil)
