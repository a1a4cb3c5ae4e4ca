package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	nethttp "net/http"
	"strings"
	"time"

	ctxpkg "github.com/piresc/poputchik/internal/pkg/context"
	"github.com/piresc/poputchik/internal/pkg/logger"
)

const (
	// DefaultBaseURL is the public trips API
	DefaultBaseURL = "https://fastapi.nl.tuna.am"

	contentTypeJSON = "application/json"
)

// Config holds API client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration // zero means no client-side timeout
}

// Client is a JSON-over-HTTP client for the trips API
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
}

// NewClient creates a new API client
func NewClient(config Config) *Client {
	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the address every endpoint is resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FormFile is a file part of a multipart request
type FormFile struct {
	Field    string
	FileName string
	Content  io.Reader
}

// MultipartBody is a ready-to-send multipart/form-data payload.
// Passing one to Do sends it as is instead of JSON-encoding it.
type MultipartBody struct {
	contentType string
	buf         *bytes.Buffer
}

// NewMultipartBody encodes fields and files as multipart/form-data
func NewMultipartBody(fields map[string]string, files ...FormFile) (*MultipartBody, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.FileName)
		if err != nil {
			return nil, fmt.Errorf("failed to create form file %s: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return nil, fmt.Errorf("failed to copy form file %s: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	return &MultipartBody{contentType: w.FormDataContentType(), buf: buf}, nil
}

// ContentType returns the multipart content type including the boundary
func (m *MultipartBody) ContentType() string {
	return m.contentType
}

// Get performs a GET request and decodes the response into out
func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.Do(ctx, nethttp.MethodGet, endpoint, nil, out)
}

// Post performs a POST request with a JSON body
func (c *Client) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPost, endpoint, body, out)
}

// PostForm performs a POST request with a multipart body
func (c *Client) PostForm(ctx context.Context, endpoint string, form *MultipartBody, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPost, endpoint, form, out)
}

// Put performs a PUT request with a JSON body
func (c *Client) Put(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPut, endpoint, body, out)
}

// Patch performs a PATCH request with a JSON body
func (c *Client) Patch(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.Do(ctx, nethttp.MethodPatch, endpoint, body, out)
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, endpoint string, out interface{}) error {
	return c.Do(ctx, nethttp.MethodDelete, endpoint, nil, out)
}

// Do sends a request to baseURL+endpoint and handles the response:
// 204 and empty bodies leave out untouched, JSON responses are decoded into
// out, any other content is handed over as text when out is a *string.
// Non-2xx responses are returned as *APIError.
func (c *Client) Do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	url := c.baseURL + endpoint

	var reqBody io.Reader
	var contentType string

	switch b := body.(type) {
	case nil:
	case *MultipartBody:
		reqBody = b.buf
		contentType = b.contentType
	default:
		jsonBody, err := json.Marshal(body)
		if err != nil {
			logger.Error("Failed to marshal request body",
				logger.String("method", method),
				logger.String("url", url),
				logger.Err(err))
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
		contentType = contentTypeJSON
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", contentTypeJSON)
	if requestID := ctxpkg.GetRequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("API request failed",
			logger.String("method", method),
			logger.String("url", url),
			logger.Err(err))
		return fmt.Errorf("failed to send %s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	logger.Debug("API request completed",
		logger.String("method", method),
		logger.String("url", url),
		logger.Int("status", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode == nethttp.StatusNoContent {
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), contentTypeJSON)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, respBody, isJSON)
	}

	if len(respBody) == 0 || out == nil {
		return nil
	}

	if isJSON {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", method, endpoint, err)
		}
		return nil
	}

	text, ok := out.(*string)
	if !ok {
		return fmt.Errorf("unexpected content type %q for %s %s", resp.Header.Get("Content-Type"), method, endpoint)
	}
	*text = string(respBody)
	return nil
}

// Ping reports whether the API answers at all. Any HTTP status counts
// as reachable; only transport failures are returned.
func (c *Client) Ping(ctx context.Context) error {
	err := c.Get(ctx, "/", nil)
	if _, ok := AsAPIError(err); ok {
		return nil
	}
	return err
}
