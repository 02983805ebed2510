package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, ...).
	Method string
	// Path is resolved against the client's BaseURL. A path starting with
	// "/" replaces the base path; a relative path appends. A full URL
	// passes through untouched.
	Path string
	// Headers are request-specific headers. They override client defaults
	// but are themselves overridden by auth headers.
	Headers map[string]string
	// Query are URL query parameters merged into the resolved URL.
	Query map[string]string
	// Body is the request body. Accepts io.Reader, []byte, string,
	// *MultipartBody, or any value that will be JSON-encoded.
	Body any
	// Auth is applied last, after default and request headers.
	Auth *AuthConfig
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, multi-valued.
	Headers http.Header
	// Body is the raw response body.
	Body []byte
	// Elapsed is the wall-clock duration of the exchange.
	Elapsed time.Duration
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// JSON unmarshals the response body into v.
func (r *Response) JSON(v any) error {
	return json.Unmarshal(r.Body, v)
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}

func (r *Response) String() string {
	return fmt.Sprintf("Response(status_code=%d, elapsed=%.2fms, content_length=%d)",
		r.StatusCode, float64(r.Elapsed.Microseconds())/1000, len(r.Body))
}
