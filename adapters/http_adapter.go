package adapters

import (
	"context"
	"net/http"
	"net/url"
)

// HTTPRequest describes a single call to the remote service.
//
// URL is the fully built request URL, including any query string the client
// concatenated onto it. At most one of Form and JSON is set.
type HTTPRequest struct {
	Method string
	URL    string
	// Query is merged into the URL's query string after the parameters
	// already present in URL.
	Query url.Values
	Form  url.Values
	JSON  any
}

// HTTPResponse represents the raw response from an HTTP request.
type HTTPResponse struct {
	OK     bool
	Status int
	Header http.Header
	Body   []byte
}

// HTTPAdapter is an interface for HTTP communication.
// Implement this interface to use custom HTTP clients.
type HTTPAdapter interface {
	// Do issues the request exactly once.
	//
	// A non-nil error means no response was received. A response with a
	// non-2xx status is not an error.
	Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error)
}
