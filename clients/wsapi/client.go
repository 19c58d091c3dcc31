package wsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Abraxas-365/wsapix/logx"
)

const (
	DefaultBaseURL = "https://api.wsapi.chat"
	DefaultTimeout = 30 * time.Second
)

// Client calls the WSAPI gateway on behalf of one instance
type Client struct {
	baseURL    string
	apiKey     string
	instanceID string
	httpClient *http.Client
}

// Config holds configuration for the gateway client
type Config struct {
	BaseURL    string        `json:"baseUrl"`
	APIKey     string        `json:"apiKey"`
	InstanceID string        `json:"instanceId"`
	Timeout    time.Duration `json:"timeout"`
}

// Request describes one gateway call. Path is relative to the base URL and
// must already be escaped.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
}

// Download is a raw response used for binary endpoints
type Download struct {
	Data    []byte
	Headers http.Header
}

// NewClient creates a new gateway client
func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		apiKey:     config.APIKey,
		instanceID: config.InstanceID,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// WithHTTPClient replaces the underlying http.Client
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

func (c *Client) BaseURL() string    { return c.baseURL }
func (c *Client) InstanceID() string { return c.instanceID }

// TestCredentials checks the API key and instance id against the session status endpoint
func (c *Client) TestCredentials(ctx context.Context) error {
	_, err := c.Get(ctx, "/session/status", nil)
	return err
}

// ============================================================================
// BASIC HTTP METHODS
// ============================================================================

func (c *Client) Get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
}

func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodPut, Path: path, Body: body})
}

func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
}

// Do executes a request and returns the JSON body. An empty body yields nil.
func (c *Client) Do(ctx context.Context, r Request) (json.RawMessage, error) {
	data, _, err := c.execute(ctx, r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		// Plain text replies are kept as a JSON string
		quoted, _ := json.Marshal(string(data))
		return quoted, nil
	}
	return data, nil
}

// Download executes a GET and returns the raw bytes with the response headers
func (c *Client) Download(ctx context.Context, path string, query url.Values) (*Download, error) {
	data, headers, err := c.execute(ctx, Request{Method: http.MethodGet, Path: path, Query: query})
	if err != nil {
		return nil, err
	}
	return &Download{Data: data, Headers: headers}, nil
}

func (c *Client) execute(ctx context.Context, r Request) ([]byte, http.Header, error) {
	reqURL := c.baseURL + r.Path
	if len(r.Query) > 0 {
		reqURL += "?" + r.Query.Encode()
	}

	var reqBody io.Reader
	if r.Body != nil {
		jsonData, err := json.Marshal(r.Body)
		if err != nil {
			return nil, nil, Registry.NewWithCause(ErrInvalidRequest, err).WithDetail("path", r.Path)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, reqURL, reqBody)
	if err != nil {
		return nil, nil, Registry.NewWithCause(ErrInvalidRequest, err).WithDetail("path", r.Path)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Instance-Id", c.instanceID)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	logx.Debug("WSAPI request: %s %s", r.Method, r.Path)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, transportError(r.Method, r.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, transportError(r.Method, r.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logx.Debug("WSAPI request failed: %s %s -> %d", r.Method, r.Path, resp.StatusCode)
		return nil, nil, remoteError(resp.StatusCode, r.Method, r.Path, respBody, resp.Header)
	}

	logx.Debug("WSAPI request completed: %s %s -> %d", r.Method, r.Path, resp.StatusCode)
	return respBody, resp.Header, nil
}
