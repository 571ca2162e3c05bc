// Package api is the REST client for the RTO back-office service. It owns
// bearer-token injection and the global 401 handling; everything above it
// works with typed records and typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	apperrors "rtoctl/internal/errors"
	"rtoctl/internal/telemetry"
)

// Client handles all back-office API interactions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	tokenSource    func() string
	onUnauthorized func()
}

// NewClient creates a new API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetTokenSource installs the callback that supplies the current bearer
// token. An empty return means the request goes out unauthenticated.
func (c *Client) SetTokenSource(fn func() string) {
	c.tokenSource = fn
}

// OnUnauthorized installs the hook fired whenever any response comes back
// 401, regardless of which call was in flight. The session layer uses it
// to clear stored credentials.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// envelope is the service's uniform response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// do executes a JSON request and decodes the envelope's data into out.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal payload: %w", err)
		}
		reader = bytes.NewBuffer(payload)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(req, out)
}

// doMultipart executes a multipart/form-data request: form fields plus an
// optional binary attachment. Documents and expenses submit this way.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(fileField, fileName)
		if err != nil {
			return fmt.Errorf("failed to create form file: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("failed to copy attachment: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, method, path, nil, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.execute(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.tokenSource != nil {
		if token := c.tokenSource(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return req, nil
}

func (c *Client) execute(req *http.Request, out any) error {
	telemetry.LogDebug("API request", "method", req.Method, "url", req.URL.String())

	resp, err := c.HTTPClient.Do(req)
	telemetry.CountRequest(req.Method, err)
	if err != nil {
		return &apperrors.NetworkError{Op: req.Method + " " + req.URL.Path, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.NetworkError{Op: req.Method + " " + req.URL.Path, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		_ = json.Unmarshal(raw, &env)
		telemetry.LogDebug("API error response", "status", resp.StatusCode, "url", req.URL.Path, "message", env.Message)

		if resp.StatusCode == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apperrors.FromStatus(resp.StatusCode, env.Message)
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// listQuery builds the conventional pagination/search query string.
func listQuery(params ListParams) url.Values {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", fmt.Sprintf("%d", params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", fmt.Sprintf("%d", params.Limit))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}
	for key, value := range params.Filters {
		query.Set(key, value)
	}
	return query
}
