package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NetHTTPAdapter is the standard HTTP adapter implementation using net/http package.
type NetHTTPAdapter struct {
	client *http.Client
}

// Ensure NetHTTPAdapter implements HTTPAdapter interface
var _ HTTPAdapter = (*NetHTTPAdapter)(nil)

// NewNetHTTPAdapter creates a new NetHTTPAdapter instance.
// A zero timeout leaves requests bounded only by their context.
func NewNetHTTPAdapter(timeout time.Duration) HTTPAdapter {
	return &NetHTTPAdapter{
		client: &http.Client{Timeout: timeout},
	}
}

// NewNetHTTPAdapterWithClient wraps an existing http.Client.
func NewNetHTTPAdapterWithClient(client *http.Client) HTTPAdapter {
	return &NetHTTPAdapter{client: client}
}

// Do sends the request and returns the raw response.
func (h *NetHTTPAdapter) Do(ctx context.Context, r *HTTPRequest) (*HTTPResponse, error) {
	target, err := requestURL(r)
	if err != nil {
		return nil, fmt.Errorf("failed to build request url: %w", err)
	}

	var body io.Reader
	contentType := ""
	switch {
	case r.JSON != nil:
		jsonData, err := json.Marshal(r.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(jsonData)
		contentType = "application/json"
	case r.Form != nil:
		body = strings.NewReader(r.Form.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return &HTTPResponse{
		Status: resp.StatusCode,
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Header: resp.Header,
		Body:   respBody,
	}, nil
}

// requestURL escapes the characters that cannot travel raw in a request line
// and appends r.Query. Parameter order and already-escaped sequences are kept.
func requestURL(r *HTTPRequest) (string, error) {
	raw := r.URL
	query := ""
	if i := strings.IndexByte(raw, '?'); i >= 0 {
		raw, query = raw[:i], raw[i+1:]
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}

	query = escapeQuery(query)
	if len(r.Query) > 0 {
		if query != "" {
			query += "&"
		}
		query += r.Query.Encode()
	}
	u.RawQuery = query
	return u.String(), nil
}

func escapeQuery(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if shouldEscape(c) {
			fmt.Fprintf(&b, "%%%02X", c)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func shouldEscape(c byte) bool {
	if c <= ' ' || c >= 0x7f {
		return true
	}
	switch c {
	case '"', '#', '<', '>', '\\', '^', '`', '{', '|', '}':
		return true
	}
	return false
}
